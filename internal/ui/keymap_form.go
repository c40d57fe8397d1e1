package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/shortcut"
)

// ErrFormCancelled is returned when the user aborts the keymap form
var ErrFormCancelled = errors.New("keymap form cancelled")

// KeymapForm collects a new keymap interactively, one shortcut at a time
type KeymapForm struct {
	actions []domain.Action
	exists  func(name string) bool
	keymap  domain.Keymap
}

// NewKeymapForm creates a form offering actions; exists rejects names already in use
func NewKeymapForm(actions []domain.Action, exists func(name string) bool) *KeymapForm {
	return &KeymapForm{
		actions: actions,
		exists:  exists,
	}
}

// Run shows the form and returns the collected keymap
func (f *KeymapForm) Run() (*domain.Keymap, error) {
	header := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Keymap name").
				Value(&f.keymap.Name).
				Validate(f.validateName),
			huh.NewInput().
				Title("Description").
				Value(&f.keymap.Description),
		),
	)
	if err := runForm(header); err != nil {
		return nil, err
	}

	for {
		var entry domain.KeymapEntry
		more := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Shortcut").
					Description(fmt.Sprintf("Shortcut %d, e.g. ctrl+s, cmd+s", len(f.keymap.Entries)+1)).
					Value(&entry.Shortcut).
					Validate(shortcut.Validate),
				huh.NewSelect[string]().
					Title("Action").
					Options(actionOptions(f.actions)...).
					Value(&entry.Action),
				huh.NewConfirm().
					Title("Add another shortcut?").
					Value(&more),
			),
		)
		if err := runForm(form); err != nil {
			return nil, err
		}
		f.keymap.Entries = append(f.keymap.Entries, entry)
		if !more {
			break
		}
	}

	return &f.keymap, nil
}

func (f *KeymapForm) validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("keymap name required")
	}
	if f.exists != nil && f.exists(name) {
		return fmt.Errorf("keymap %s already exists", name)
	}
	return nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrFormCancelled
		}
		return err
	}
	return nil
}

func actionOptions(actions []domain.Action) []huh.Option[string] {
	options := make([]huh.Option[string], len(actions))
	for i, a := range actions {
		label := a.Name
		if a.Description != "" {
			label += " - " + a.Description
		}
		options[i] = huh.NewOption(label, a.Name)
	}
	return options
}
