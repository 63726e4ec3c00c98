package models

import "time"

// MusicTheme is a track that may belong to a game and be associated with a character.
// Both references are optional; a theme with neither is "unlinked".
type MusicTheme struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;not null"`
	CharacterID *uint  `gorm:"index"`
	GameID      *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Character *Character `gorm:"foreignKey:CharacterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Game      *Game      `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
