package seed

import (
	"context"
	"strings"
	"testing"

	"touhoucatalog/backend/internal/database"
	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/repository"
)

func newTestStore(t *testing.T, name string) *repository.Store {
	t.Helper()
	dsn := "file:seed_test_" + name + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := database.Connect(database.Options{Driver: "sqlite", DSN: dsn, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.New(db).WithContext(context.Background())
}

func TestLoadEmbeddedCatalog(t *testing.T) {
	catalog, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(catalog.Games) != 2 || len(catalog.Characters) != 4 {
		t.Fatalf("catalog has %d games and %d characters, want 2 and 4", len(catalog.Games), len(catalog.Characters))
	}
}

func TestRunSeedsOnce(t *testing.T) {
	s := newTestStore(t, "once")

	if err := Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := Run(s); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	games, err := s.Games.GetAllWithDetails()
	if err != nil {
		t.Fatalf("GetAllWithDetails: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("games = %d, want 2", len(games))
	}
	if games[0].Title != "Embodiment of Scarlet Devil" || len(games[0].Characters) != 3 || len(games[0].MusicThemes) != 3 {
		t.Fatalf("th06 = %q with %d characters and %d themes", games[0].Title, len(games[0].Characters), len(games[0].MusicThemes))
	}
	if games[1].Title != "Perfect Cherry Blossom" || len(games[1].Characters) != 3 || len(games[1].MusicThemes) != 1 {
		t.Fatalf("th07 = %q with %d characters and %d themes", games[1].Title, len(games[1].Characters), len(games[1].MusicThemes))
	}

	themes, err := s.MusicThemes.GetAll()
	if err != nil {
		t.Fatalf("GetAll themes: %v", err)
	}
	if len(themes) != 4 {
		t.Fatalf("themes = %d, want 4", len(themes))
	}
	for _, th := range themes {
		if th.CharacterID == nil || th.GameID == nil {
			t.Fatalf("theme %q is not linked", th.Title)
		}
	}
}

func TestApplySkipsPopulatedDatabase(t *testing.T) {
	s := newTestStore(t, "populated")
	existing := &Catalog{Games: []dto.GameDetail{{Title: "Imperishable Night", GameNumber: 8, ImageURL: "Images/th08.jpg"}}}
	if err := Apply(s, existing); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := Run(s); err != nil {
		t.Fatalf("Run: %v", err)
	}

	n, err := s.Games.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("games = %d, want 1", n)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	title := "Lost Game"
	tests := []struct {
		name    string
		catalog Catalog
		want    string
	}{
		{
			name: "invalid game",
			catalog: Catalog{Games: []dto.GameDetail{
				{Title: "", GameNumber: 6, ImageURL: "Images/th06.jpg", Characters: []dto.CharacterBasic{}, MusicThemes: []dto.MusicTheme{}},
			}},
			want: "Title is required",
		},
		{
			name: "unknown game title",
			catalog: Catalog{Characters: []dto.CharacterDetail{{
				Name: "Hakurei Reimu", Abilities: []string{}, ImageURL: "Images/reimu.png",
				Games:       []dto.GameBasic{{Title: title}},
				MusicThemes: []dto.MusicTheme{},
			}}},
			want: `unknown game "Lost Game"`,
		},
		{
			name: "unknown theme game",
			catalog: Catalog{Characters: []dto.CharacterDetail{{
				Name: "Hakurei Reimu", Abilities: []string{}, ImageURL: "Images/reimu.png",
				Games:       []dto.GameBasic{},
				MusicThemes: []dto.MusicTheme{{Title: "Theme", GameTitle: &title}},
			}}},
			want: `unknown game "Lost Game"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.catalog.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}
