package storage

import "time"

// KeymapModel is the GORM model for keymaps table
type KeymapModel struct {
	CreatedAt   time.Time
	Description string             `gorm:"not null;default:''"`
	Entries     []KeymapEntryModel `gorm:"foreignKey:KeymapName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name        string             `gorm:"primaryKey"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (KeymapModel) TableName() string { return "keymaps" }

// KeymapEntryModel is the GORM model for keymap entries.
// Position is the match priority inside the keymap.
type KeymapEntryModel struct {
	Action     string `gorm:"not null"`
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	KeymapName string `gorm:"not null;index:idx_keymap_position,priority:1"`
	Position   int    `gorm:"not null;index:idx_keymap_position,priority:2"`
	Shortcut   string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeymapEntryModel) TableName() string { return "keymap_entries" }
