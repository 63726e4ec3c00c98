package dto

import (
	"touhoucatalog/backend/internal/models"

	"gorm.io/datatypes"
)

func NewGameBasic(g models.Game) GameBasic {
	return GameBasic{
		ID:         int(g.ID),
		Title:      g.Title,
		GameNumber: g.GameNumber,
		ImageURL:   g.ImageURL,
	}
}

func NewGameBasics(games []models.Game) []GameBasic {
	out := make([]GameBasic, 0, len(games))
	for _, g := range games {
		out = append(out, NewGameBasic(g))
	}
	return out
}

func NewGameDetail(d models.GameDetails) GameDetail {
	return GameDetail{
		ID:          int(d.ID),
		Title:       d.Title,
		GameNumber:  d.GameNumber,
		ImageURL:    d.ImageURL,
		Characters:  NewCharacterBasics(d.Characters),
		MusicThemes: NewMusicThemes(d.MusicThemes),
	}
}

func NewGameDetails(details []models.GameDetails) []GameDetail {
	out := make([]GameDetail, 0, len(details))
	for _, d := range details {
		out = append(out, NewGameDetail(d))
	}
	return out
}

func NewCharacterBasic(c models.Character) CharacterBasic {
	return CharacterBasic{
		ID:          int(c.ID),
		Name:        c.Name,
		Description: c.Description,
		Abilities:   copyAbilities(c.Abilities),
		ImageURL:    c.ImageURL,
	}
}

func NewCharacterBasics(characters []models.Character) []CharacterBasic {
	out := make([]CharacterBasic, 0, len(characters))
	for _, c := range characters {
		out = append(out, NewCharacterBasic(c))
	}
	return out
}

func NewCharacterDetail(d models.CharacterDetails) CharacterDetail {
	return CharacterDetail{
		ID:          int(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Abilities:   copyAbilities(d.Abilities),
		ImageURL:    d.ImageURL,
		Games:       NewGameBasics(d.Games),
		MusicThemes: NewMusicThemes(d.MusicThemes),
	}
}

func NewCharacterDetails(details []models.CharacterDetails) []CharacterDetail {
	out := make([]CharacterDetail, 0, len(details))
	for _, d := range details {
		out = append(out, NewCharacterDetail(d))
	}
	return out
}

// NewMusicTheme projects a theme, denormalizing the names of its loaded relations.
func NewMusicTheme(t models.MusicTheme) MusicTheme {
	out := MusicTheme{
		ID:          int(t.ID),
		Title:       t.Title,
		CharacterID: intPtr(t.CharacterID),
		GameID:      intPtr(t.GameID),
	}
	if t.CharacterID != nil && t.Character != nil {
		name := t.Character.Name
		out.CharacterName = &name
	}
	if t.GameID != nil && t.Game != nil {
		title := t.Game.Title
		out.GameTitle = &title
	}
	return out
}

func NewMusicThemes(themes []models.MusicTheme) []MusicTheme {
	out := make([]MusicTheme, 0, len(themes))
	for _, t := range themes {
		out = append(out, NewMusicTheme(t))
	}
	return out
}

// ToModel builds a new game from the scalar fields.
func (g GameBasic) ToModel() models.Game {
	game := models.Game{ID: uint(g.ID)}
	g.ApplyTo(&game)
	return game
}

// ApplyTo replaces the scalar fields of game.
func (g GameBasic) ApplyTo(game *models.Game) {
	game.Title = g.Title
	game.GameNumber = g.GameNumber
	game.ImageURL = g.ImageURL
}

// Basic drops the nested collections.
func (g GameDetail) Basic() GameBasic {
	return GameBasic{ID: g.ID, Title: g.Title, GameNumber: g.GameNumber, ImageURL: g.ImageURL}
}

// ToModel builds a new character from the scalar fields. Abilities are never nil.
func (c CharacterBasic) ToModel() models.Character {
	character := models.Character{ID: uint(c.ID)}
	c.ApplyTo(&character)
	return character
}

// ApplyTo replaces the scalar fields of character.
func (c CharacterBasic) ApplyTo(character *models.Character) {
	character.Name = c.Name
	character.Description = c.Description
	character.Abilities = datatypes.JSONSlice[string](copyAbilities(c.Abilities))
	character.ImageURL = c.ImageURL
}

// Basic drops the nested collections.
func (c CharacterDetail) Basic() CharacterBasic {
	return CharacterBasic{ID: c.ID, Name: c.Name, Description: c.Description, Abilities: c.Abilities, ImageURL: c.ImageURL}
}

// ToModel builds a theme from the title and references. Denormalized names are ignored.
func (t MusicTheme) ToModel() models.MusicTheme {
	theme := models.MusicTheme{ID: uint(t.ID)}
	t.ApplyTo(&theme)
	return theme
}

// ApplyTo replaces the title and both references of theme.
func (t MusicTheme) ApplyTo(theme *models.MusicTheme) {
	theme.Title = t.Title
	theme.CharacterID = uintPtr(t.CharacterID)
	theme.GameID = uintPtr(t.GameID)
	theme.Character = nil
	theme.Game = nil
}

func copyAbilities(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func intPtr(v *uint) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func uintPtr(v *int) *uint {
	if v == nil {
		return nil
	}
	u := uint(*v)
	return &u
}
