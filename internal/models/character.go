package models

import (
	"time"

	"gorm.io/datatypes"
)

// Character represents a character appearing in one or more games.
type Character struct {
	ID          uint                        `gorm:"primaryKey"`
	Name        string                      `gorm:"size:50;not null"`
	Description string                      `gorm:"size:500"`
	Abilities   datatypes.JSONSlice[string] `gorm:"not null"`
	ImageURL    string                      `gorm:"size:200;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CharacterDetails is a character together with the games it appears in and its themes.
type CharacterDetails struct {
	Character
	Games       []Game
	MusicThemes []MusicTheme
}
