package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"

	"touhoucatalog/backend/internal/database"
	"touhoucatalog/backend/internal/models"

	"gorm.io/datatypes"
)

var dbSeq atomic.Int64

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbSeq.Add(1))
	db, err := database.Connect(database.Options{Driver: "sqlite", DSN: dsn, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db).WithContext(context.Background())
}

func addGame(t *testing.T, s *Store, title string, number float64) *models.Game {
	t.Helper()
	g := &models.Game{Title: title, GameNumber: number, ImageURL: "Images/game.jpg"}
	if err := s.Games.Add(g); err != nil {
		t.Fatalf("add game: %v", err)
	}
	return g
}

func addCharacter(t *testing.T, s *Store, name string, abilities ...string) *models.Character {
	t.Helper()
	c := &models.Character{Name: name, ImageURL: "Images/char.png", Abilities: datatypes.JSONSlice[string](abilities)}
	if err := s.Characters.Add(c); err != nil {
		t.Fatalf("add character: %v", err)
	}
	return c
}

func uintPtr(v uint) *uint { return &v }

func TestCharacterRoundTripPreservesAbilities(t *testing.T) {
	s := newTestStore(t)
	c := addCharacter(t, s, "Sakuya Izayoi", "Time stop", "Knife throwing", "Housekeeping")
	if c.ID == 0 {
		t.Fatalf("ID not assigned")
	}

	got, err := s.Characters.GetByID(c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	want := []string{"Time stop", "Knife throwing", "Housekeeping"}
	if !reflect.DeepEqual([]string(got.Abilities), want) {
		t.Fatalf("abilities = %v, want %v", got.Abilities, want)
	}
	if got.Name != c.Name || got.ImageURL != c.ImageURL {
		t.Fatalf("got %+v, want %+v", got, c)
	}
}

func TestCharacterAddNilAbilitiesStoresEmpty(t *testing.T) {
	s := newTestStore(t)
	c := addCharacter(t, s, "Cirno")

	got, err := s.Characters.GetByID(c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Abilities == nil || len(got.Abilities) != 0 {
		t.Fatalf("abilities = %#v, want empty non-nil", got.Abilities)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Games.GetByID(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Game" || nf.ID != 42 {
		t.Fatalf("err = %#v, want NotFoundError{Game, 42}", err)
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Games.Update(&models.Game{ID: 7, Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Games.Update err = %v, want ErrNotFound", err)
	}
	if err := s.Characters.Update(&models.Character{ID: 7, Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Characters.Update err = %v, want ErrNotFound", err)
	}
	if err := s.MusicThemes.Update(&models.MusicTheme{ID: 7, Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MusicThemes.Update err = %v, want ErrNotFound", err)
	}
	if err := s.Games.Delete(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Games.Delete err = %v, want ErrNotFound", err)
	}
	if err := s.Characters.Delete(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Characters.Delete err = %v, want ErrNotFound", err)
	}
	if err := s.MusicThemes.Delete(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MusicThemes.Delete err = %v, want ErrNotFound", err)
	}
}

func TestGameUpdateReplacesScalars(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Imperishable Night", 8)

	if err := s.Games.Update(&models.Game{ID: g.ID, Title: "Phantasmagoria of Flower View", GameNumber: 9, ImageURL: "Images/th09.png"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Games.GetByID(g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Phantasmagoria of Flower View" || got.GameNumber != 9 || got.ImageURL != "Images/th09.png" {
		t.Fatalf("got %+v", got)
	}
}

func TestLinkCharacterIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	c := addCharacter(t, s, "Hakurei Reimu")

	for i := 0; i < 2; i++ {
		if err := s.Games.LinkCharacter(g.ID, c.ID); err != nil {
			t.Fatalf("LinkCharacter #%d: %v", i+1, err)
		}
	}

	var count int64
	if err := s.db.Model(&models.GameCharacter{}).Where("game_id = ? AND character_id = ?", g.ID, c.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("join rows = %d, want 1", count)
	}

	details, err := s.Games.GetWithDetails(g.ID)
	if err != nil {
		t.Fatalf("GetWithDetails: %v", err)
	}
	if len(details.Characters) != 1 || details.Characters[0].ID != c.ID {
		t.Fatalf("characters = %+v, want [%d]", details.Characters, c.ID)
	}

	cd, err := s.Characters.GetWithDetails(c.ID)
	if err != nil {
		t.Fatalf("Characters.GetWithDetails: %v", err)
	}
	if len(cd.Games) != 1 || cd.Games[0].ID != g.ID {
		t.Fatalf("games = %+v, want [%d]", cd.Games, g.ID)
	}
}

func TestLinkCharacterMissingEntity(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	c := addCharacter(t, s, "Hakurei Reimu")

	tests := []struct {
		name        string
		gameID      uint
		characterID uint
		wantEntity  string
	}{
		{"missing game", 999, c.ID, "Game"},
		{"missing character", g.ID, 999, "Character"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Games.LinkCharacter(tc.gameID, tc.characterID)
			var nf *NotFoundError
			if !errors.As(err, &nf) || nf.Entity != tc.wantEntity {
				t.Fatalf("err = %v, want NotFoundError for %s", err, tc.wantEntity)
			}
		})
	}
}

func TestUnlinkCharacter(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	c := addCharacter(t, s, "Hakurei Reimu")

	if err := s.Games.UnlinkCharacter(g.ID, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unlink of unlinked pair err = %v, want ErrNotFound", err)
	}
	if err := s.Games.UnlinkCharacter(999, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unlink with missing game err = %v, want ErrNotFound", err)
	}

	if err := s.Games.LinkCharacter(g.ID, c.ID); err != nil {
		t.Fatalf("LinkCharacter: %v", err)
	}
	if err := s.Games.UnlinkCharacter(g.ID, c.ID); err != nil {
		t.Fatalf("UnlinkCharacter: %v", err)
	}
	details, err := s.Games.GetWithDetails(g.ID)
	if err != nil {
		t.Fatalf("GetWithDetails: %v", err)
	}
	if len(details.Characters) != 0 {
		t.Fatalf("characters = %+v, want none after unlink", details.Characters)
	}
}

func TestDeleteGameCascades(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	other := addGame(t, s, "Perfect Cherry Blossom", 7)
	c := addCharacter(t, s, "Marisa Kirisame")
	for _, id := range []uint{g.ID, other.ID} {
		if err := s.Games.LinkCharacter(id, c.ID); err != nil {
			t.Fatalf("LinkCharacter: %v", err)
		}
	}
	theme := &models.MusicTheme{Title: "Love-coloured Master Spark", GameID: uintPtr(g.ID), CharacterID: uintPtr(c.ID)}
	if err := s.Games.AttachMusicTheme(theme); err != nil {
		t.Fatalf("AttachMusicTheme: %v", err)
	}

	if err := s.Games.Delete(g.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	cd, err := s.Characters.GetWithDetails(c.ID)
	if err != nil {
		t.Fatalf("GetWithDetails: %v", err)
	}
	if len(cd.Games) != 1 || cd.Games[0].ID != other.ID {
		t.Fatalf("games after delete = %+v, want only %d", cd.Games, other.ID)
	}

	got, err := s.MusicThemes.GetByID(theme.ID)
	if err != nil {
		t.Fatalf("theme should survive game deletion: %v", err)
	}
	if got.GameID != nil {
		t.Fatalf("GameID = %d, want nil", *got.GameID)
	}
	if got.CharacterID == nil || *got.CharacterID != c.ID {
		t.Fatalf("CharacterID changed: %v", got.CharacterID)
	}
}

func TestDeleteCharacterCascades(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Perfect Cherry Blossom", 7)
	c := addCharacter(t, s, "Youmu Konpaku")
	if err := s.Games.LinkCharacter(g.ID, c.ID); err != nil {
		t.Fatalf("LinkCharacter: %v", err)
	}
	theme := &models.MusicTheme{Title: "Border of Life", GameID: uintPtr(g.ID), CharacterID: uintPtr(c.ID)}
	if err := s.MusicThemes.Add(theme); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Characters.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	gd, err := s.Games.GetWithDetails(g.ID)
	if err != nil {
		t.Fatalf("GetWithDetails: %v", err)
	}
	if len(gd.Characters) != 0 {
		t.Fatalf("characters = %+v, want none", gd.Characters)
	}
	if len(gd.MusicThemes) != 1 || gd.MusicThemes[0].CharacterID != nil {
		t.Fatalf("themes = %+v, want one theme with nil character", gd.MusicThemes)
	}
}

func TestMusicThemeReferencesMustResolve(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)

	err := s.MusicThemes.Add(&models.MusicTheme{Title: "Septette for the Dead Princess", GameID: uintPtr(g.ID), CharacterID: uintPtr(404)})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Character" {
		t.Fatalf("err = %v, want Character not found", err)
	}

	err = s.Games.AttachMusicTheme(&models.MusicTheme{Title: "Septette for the Dead Princess", GameID: uintPtr(404)})
	if !errors.As(err, &nf) || nf.Entity != "Game" {
		t.Fatalf("err = %v, want Game not found", err)
	}

	theme := &models.MusicTheme{Title: "Septette for the Dead Princess", GameID: uintPtr(g.ID)}
	if err := s.MusicThemes.Add(theme); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if theme.Game == nil || theme.Game.Title != g.Title {
		t.Fatalf("Add did not load Game: %+v", theme.Game)
	}

	theme.GameID = uintPtr(999)
	if err := s.MusicThemes.Update(theme); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update with dangling game err = %v, want ErrNotFound", err)
	}
}

func TestUnlinkedThemes(t *testing.T) {
	s := newTestStore(t)
	g := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	c := addCharacter(t, s, "Hakurei Reimu")

	unlinked := &models.MusicTheme{Title: "A Soul as Red as a Ground Cherry"}
	if err := s.MusicThemes.Add(unlinked); err != nil {
		t.Fatalf("Add: %v", err)
	}
	linked := &models.MusicTheme{Title: "Maiden's Capriccio", GameID: uintPtr(g.ID), CharacterID: uintPtr(c.ID)}
	if err := s.MusicThemes.Add(linked); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.MusicThemes.ListUnlinked()
	if err != nil {
		t.Fatalf("ListUnlinked: %v", err)
	}
	if len(got) != 1 || got[0].ID != unlinked.ID {
		t.Fatalf("unlinked = %+v, want [%d]", got, unlinked.ID)
	}

	byGame, err := s.MusicThemes.ListByGame(g.ID)
	if err != nil {
		t.Fatalf("ListByGame: %v", err)
	}
	byCharacter, err := s.MusicThemes.ListByCharacter(c.ID)
	if err != nil {
		t.Fatalf("ListByCharacter: %v", err)
	}
	for _, list := range [][]models.MusicTheme{byGame, byCharacter} {
		if len(list) != 1 || list[0].ID != linked.ID {
			t.Fatalf("list = %+v, want only %d", list, linked.ID)
		}
	}
	if byGame[0].Character == nil || byGame[0].Character.Name != c.Name {
		t.Fatalf("ListByGame did not load Character")
	}
	if byCharacter[0].Game == nil || byCharacter[0].Game.Title != g.Title {
		t.Fatalf("ListByCharacter did not load Game")
	}
}

func TestGetAllWithDetails(t *testing.T) {
	s := newTestStore(t)
	g7 := addGame(t, s, "Perfect Cherry Blossom", 7)
	g6 := addGame(t, s, "Embodiment of Scarlet Devil", 6)
	reimu := addCharacter(t, s, "Hakurei Reimu")
	sakuya := addCharacter(t, s, "Sakuya Izayoi")
	for _, pair := range [][2]uint{{g6.ID, reimu.ID}, {g6.ID, sakuya.ID}, {g7.ID, reimu.ID}} {
		if err := s.Games.LinkCharacter(pair[0], pair[1]); err != nil {
			t.Fatalf("LinkCharacter: %v", err)
		}
	}

	games, err := s.Games.GetAllWithDetails()
	if err != nil {
		t.Fatalf("GetAllWithDetails: %v", err)
	}
	if len(games) != 2 || games[0].ID != g6.ID {
		t.Fatalf("games not ordered by number: %+v", games)
	}
	if len(games[0].Characters) != 2 || len(games[1].Characters) != 1 {
		t.Fatalf("character counts = %d, %d, want 2, 1", len(games[0].Characters), len(games[1].Characters))
	}

	characters, err := s.Characters.GetAllWithGames()
	if err != nil {
		t.Fatalf("GetAllWithGames: %v", err)
	}
	if len(characters) != 2 {
		t.Fatalf("characters = %d, want 2", len(characters))
	}
	if len(characters[0].Games) != 2 || characters[0].Games[0].ID != g6.ID {
		t.Fatalf("reimu games = %+v, want [%d %d]", characters[0].Games, g6.ID, g7.ID)
	}
	if characters[1].MusicThemes == nil {
		t.Fatalf("MusicThemes is nil, want empty")
	}
}

func TestTransactionRollsBack(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.Transaction(func(tx *Store) error {
		addGame(t, tx, "Embodiment of Scarlet Devil", 6)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	n, err := s.Games.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0 after rollback", n)
	}
}
