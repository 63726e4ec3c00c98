// Package dto defines the wire shapes of the catalog API and converts them to and from models.
//
// Each entity has a basic tier carrying scalar fields only and a detail tier that nests
// the basic tier of related entities. Reverse conversions copy scalar and reference fields
// only; relations are changed through dedicated repository operations.
package dto

// GameBasic is the list-view projection of a game.
type GameBasic struct {
	ID         int     `json:"id" example:"1"`
	Title      string  `json:"title" example:"Embodiment of Scarlet Devil"`
	GameNumber float64 `json:"gameNumber" example:"6"`
	ImageURL   string  `json:"imageUrl" example:"Images/th06.jpg"`
}

// GameDetail is a game with its characters and music themes.
type GameDetail struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	GameNumber  float64          `json:"gameNumber"`
	ImageURL    string           `json:"imageUrl"`
	Characters  []CharacterBasic `json:"characters"`
	MusicThemes []MusicTheme     `json:"musicThemes"`
}

// CharacterBasic is the list-view projection of a character.
type CharacterBasic struct {
	ID          int      `json:"id" example:"1"`
	Name        string   `json:"name" example:"Hakurei Reimu"`
	Description string   `json:"description" example:"Shrine maiden of the Hakurei Shrine"`
	Abilities   []string `json:"abilities"`
	ImageURL    string   `json:"imageUrl" example:"Images/reimu.jpg"`
}

// CharacterDetail is a character with the games it appears in and its music themes.
type CharacterDetail struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Abilities   []string     `json:"abilities"`
	ImageURL    string       `json:"imageUrl"`
	Games       []GameBasic  `json:"games"`
	MusicThemes []MusicTheme `json:"musicThemes"`
}

// MusicTheme is the projection of a music theme. CharacterName and GameTitle are
// filled from the related rows and are null when the reference is unset.
type MusicTheme struct {
	ID            int     `json:"id" example:"1"`
	Title         string  `json:"title" example:"Maiden's Capriccio ~ Dream Battle"`
	CharacterID   *int    `json:"characterId"`
	GameID        *int    `json:"gameId"`
	CharacterName *string `json:"characterName"`
	GameTitle     *string `json:"gameTitle"`
}
