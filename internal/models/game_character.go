package models

import "time"

// GameCharacter records that a character appears in a game.
// The primary key is a composite of (GameID, CharacterID) so a pair is stored at most once.
type GameCharacter struct {
	GameID      uint `gorm:"primaryKey;autoIncrement:false"`
	CharacterID uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt   time.Time

	Game      Game      `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Character Character `gorm:"foreignKey:CharacterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// All lists every model in migration order.
func All() []any {
	return []any{&Game{}, &Character{}, &MusicTheme{}, &GameCharacter{}}
}
