package models

import "time"

// Game represents a numbered entry of the series.
type Game struct {
	ID         uint    `gorm:"primaryKey"`
	Title      string  `gorm:"size:100;not null"`
	GameNumber float64 `gorm:"not null;index"`
	ImageURL   string  `gorm:"size:200;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GameDetails is a game together with the rows that reference it.
type GameDetails struct {
	Game
	Characters  []Character
	MusicThemes []MusicTheme
}
