package storage

import (
	"sort"

	"github.com/renato0307/chord/internal/domain"
)

func keymapModelToDomain(m KeymapModel) domain.Keymap {
	entries := make([]KeymapEntryModel, len(m.Entries))
	copy(entries, m.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Position < entries[j].Position
	})

	result := domain.Keymap{
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
		Entries:     make([]domain.KeymapEntry, len(entries)),
		Name:        m.Name,
		UpdatedAt:   m.UpdatedAt,
	}
	for i, e := range entries {
		result.Entries[i] = domain.KeymapEntry{Action: e.Action, Shortcut: e.Shortcut}
	}
	return result
}

func domainToKeymapModel(k domain.Keymap) KeymapModel {
	return KeymapModel{
		CreatedAt:   k.CreatedAt,
		Description: k.Description,
		Name:        k.Name,
		UpdatedAt:   k.UpdatedAt,
	}
}

func domainToEntryModels(k domain.Keymap) []KeymapEntryModel {
	entries := make([]KeymapEntryModel, len(k.Entries))
	for i, e := range k.Entries {
		entries[i] = KeymapEntryModel{
			Action:     e.Action,
			KeymapName: k.Name,
			Position:   i,
			Shortcut:   e.Shortcut,
		}
	}
	return entries
}
