package validation

import (
	"fmt"

	"touhoucatalog/backend/internal/dto"
)

const maxAbilities = 10

// GameBasic validates the scalar fields of a game.
func GameBasic(g dto.GameBasic) Errors {
	errs := Errors{}
	validateGameScalars(errs, g)
	return errs
}

// GameDetail validates a game and requires its collections to be present.
func GameDetail(g dto.GameDetail) Errors {
	errs := Errors{}
	validateGameScalars(errs, g.Basic())
	apply(errs, "characters", g.Characters, notNil[dto.CharacterBasic]("Characters list cannot be null"))
	apply(errs, "musicThemes", g.MusicThemes, notNil[dto.MusicTheme]("Music themes list cannot be null"))
	return errs
}

func validateGameScalars(errs Errors, g dto.GameBasic) {
	apply(errs, "title", g.Title,
		notEmpty("Title is required"),
		lengthBetween(1, 100, "Title must be between 1 and 100 characters"),
	)
	apply(errs, "gameNumber", g.GameNumber,
		rule[float64]{check: func(n float64) bool { return n > 0 }, message: "Game number must be greater than 0"},
		rule[float64]{check: func(n float64) bool { return n < 100 }, message: "Game number must be less than 100"},
	)
	apply(errs, "imageUrl", g.ImageURL, imageURLRules()...)
}

// CharacterBasic validates the scalar fields of a character, including every ability.
func CharacterBasic(c dto.CharacterBasic) Errors {
	errs := Errors{}
	validateCharacterScalars(errs, c)
	return errs
}

// CharacterDetail validates a character and requires its collections to be present.
func CharacterDetail(c dto.CharacterDetail) Errors {
	errs := Errors{}
	validateCharacterScalars(errs, c.Basic())
	apply(errs, "games", c.Games, notNil[dto.GameBasic]("Games list cannot be null"))
	apply(errs, "musicThemes", c.MusicThemes, notNil[dto.MusicTheme]("Music themes list cannot be null"))
	return errs
}

func validateCharacterScalars(errs Errors, c dto.CharacterBasic) {
	apply(errs, "name", c.Name,
		notEmpty("Name is required"),
		lengthBetween(1, 50, "Name must be between 1 and 50 characters"),
		onlyRunes(isNameRune, "Name can only contain letters and spaces"),
	)
	apply(errs, "description", c.Description,
		maxLen(500, "Description cannot exceed 500 characters"),
	)
	apply(errs, "imageUrl", c.ImageURL, imageURLRules()...)
	apply(errs, "abilities", c.Abilities,
		notNil[string]("Abilities list cannot be null"),
		rule[[]string]{check: func(a []string) bool { return len(a) <= maxAbilities }, message: fmt.Sprintf("Cannot have more than %d abilities", maxAbilities)},
	)
	for i, ability := range c.Abilities {
		apply(errs, fmt.Sprintf("abilities[%d]", i), ability,
			notEmpty("Ability cannot be empty"),
			maxLen(100, "Each ability cannot exceed 100 characters"),
		)
	}
}

// MusicTheme validates a theme. Null references are allowed; present ones must be positive.
// Whether they resolve is checked by the repository.
func MusicTheme(t dto.MusicTheme) Errors {
	errs := Errors{}
	apply(errs, "title", t.Title,
		notEmpty("Music theme title is required"),
		lengthBetween(1, 100, "Title must be between 1 and 100 characters"),
		onlyRunes(isThemeTitleRune, "Title can only contain letters, numbers, spaces and common punctuation"),
	)
	apply(errs, "characterId", t.CharacterID, positiveOrNil("Character ID must be greater than 0"))
	apply(errs, "gameId", t.GameID, positiveOrNil("Game ID must be greater than 0"))
	if t.CharacterName != nil {
		apply(errs, "characterName", *t.CharacterName, maxLen(50, "Character name cannot exceed 50 characters"))
	}
	if t.GameTitle != nil {
		apply(errs, "gameTitle", *t.GameTitle, maxLen(100, "Game title cannot exceed 100 characters"))
	}
	return errs
}

func positiveOrNil(msg string) rule[*int] {
	return rule[*int]{check: func(v *int) bool { return v == nil || *v > 0 }, message: msg}
}
