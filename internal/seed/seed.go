// Package seed fills an empty database with a starter catalog.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/models"
	"touhoucatalog/backend/internal/repository"
	"touhoucatalog/backend/internal/validation"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog is the seed data. Characters refer to games by title and their
// themes name the game they belong to through GameTitle.
type Catalog struct {
	Games      []dto.GameDetail      `json:"games"`
	Characters []dto.CharacterDetail `json:"characters"`
}

// Load decodes the embedded catalog and validates every entry.
func Load() (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate checks each entry with the detail validators and verifies that every
// referenced game title is part of the catalog.
func (c *Catalog) Validate() error {
	titles := make(map[string]bool, len(c.Games))
	for _, g := range c.Games {
		if err := validation.GameDetail(g).Err(); err != nil {
			return fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		titles[g.Title] = true
	}

	for _, ch := range c.Characters {
		if err := validation.CharacterDetail(ch).Err(); err != nil {
			return fmt.Errorf("seed character %q: %w", ch.Name, err)
		}
		for _, g := range ch.Games {
			if !titles[g.Title] {
				return fmt.Errorf("seed character %q: unknown game %q", ch.Name, g.Title)
			}
		}
		for _, t := range ch.MusicThemes {
			if err := validation.MusicTheme(t).Err(); err != nil {
				return fmt.Errorf("seed theme %q: %w", t.Title, err)
			}
			if t.GameTitle != nil && !titles[*t.GameTitle] {
				return fmt.Errorf("seed theme %q: unknown game %q", t.Title, *t.GameTitle)
			}
		}
	}
	return nil
}

// Run seeds store with the embedded catalog when no games exist yet.
func Run(store *repository.Store) error {
	catalog, err := Load()
	if err != nil {
		return err
	}
	return Apply(store, catalog)
}

// Apply writes catalog in a single transaction. It does nothing when games already exist.
func Apply(store *repository.Store, catalog *Catalog) error {
	n, err := store.Games.Count()
	if err != nil {
		return fmt.Errorf("count games: %w", err)
	}
	if n > 0 {
		log.Println("Database already contains games, skipping seed.")
		return nil
	}

	err = store.Transaction(func(tx *repository.Store) error {
		gameIDs := make(map[string]uint, len(catalog.Games))
		for _, g := range catalog.Games {
			game := g.Basic().ToModel()
			game.ID = 0
			if err := tx.Games.Add(&game); err != nil {
				return fmt.Errorf("add game %q: %w", g.Title, err)
			}
			gameIDs[g.Title] = game.ID
		}

		for _, ch := range catalog.Characters {
			character := ch.Basic().ToModel()
			character.ID = 0
			if err := tx.Characters.Add(&character); err != nil {
				return fmt.Errorf("add character %q: %w", ch.Name, err)
			}

			for _, g := range ch.Games {
				if err := tx.Games.LinkCharacter(gameIDs[g.Title], character.ID); err != nil {
					return fmt.Errorf("link %q to %q: %w", ch.Name, g.Title, err)
				}
			}

			for _, t := range ch.MusicThemes {
				theme := models.MusicTheme{Title: t.Title, CharacterID: &character.ID}
				if t.GameTitle != nil {
					id := gameIDs[*t.GameTitle]
					theme.GameID = &id
				}
				if err := tx.MusicThemes.Add(&theme); err != nil {
					return fmt.Errorf("add theme %q: %w", t.Title, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d games and %d characters.", len(catalog.Games), len(catalog.Characters))
	return nil
}
