package repository

import (
	"fmt"

	"touhoucatalog/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository reads and writes games and their character links.
type GameRepository struct {
	DB *gorm.DB
}

// GetAll returns every game ordered by its number in the series.
func (r *GameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	if err := r.DB.Order("game_number, id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Count returns the number of stored games.
func (r *GameRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&models.Game{}).Count(&n).Error
	return n, err
}

func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := first(r.DB, &game, "Game", id); err != nil {
		return nil, err
	}
	return &game, nil
}

// GetWithDetails loads a game with its characters and music themes.
// Themes carry their Character and Game so projections can show both names.
func (r *GameRepository) GetWithDetails(id uint) (*models.GameDetails, error) {
	game, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	details := []models.GameDetails{{Game: *game}}
	if err := r.loadDetails(details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

// GetAllWithDetails loads every game with its characters and music themes.
func (r *GameRepository) GetAllWithDetails() ([]models.GameDetails, error) {
	games, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	details := make([]models.GameDetails, len(games))
	for i, g := range games {
		details[i] = models.GameDetails{Game: g}
	}
	if err := r.loadDetails(details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *GameRepository) loadDetails(details []models.GameDetails) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]uint, len(details))
	index := make(map[uint]int, len(details))
	for i, d := range details {
		ids[i] = d.ID
		index[d.ID] = i
		details[i].Characters = []models.Character{}
		details[i].MusicThemes = []models.MusicTheme{}
	}

	var links []models.GameCharacter
	if err := r.DB.Where("game_id IN ?", ids).Order("character_id").Find(&links).Error; err != nil {
		return fmt.Errorf("load character links: %w", err)
	}

	if len(links) > 0 {
		characterIDs := make([]uint, 0, len(links))
		for _, l := range links {
			characterIDs = append(characterIDs, l.CharacterID)
		}
		var characters []models.Character
		if err := r.DB.Where("id IN ?", characterIDs).Find(&characters).Error; err != nil {
			return fmt.Errorf("load characters: %w", err)
		}
		byID := make(map[uint]models.Character, len(characters))
		for _, c := range characters {
			byID[c.ID] = c
		}
		for _, l := range links {
			if c, ok := byID[l.CharacterID]; ok {
				i := index[l.GameID]
				details[i].Characters = append(details[i].Characters, c)
			}
		}
	}

	var themes []models.MusicTheme
	if err := r.DB.Preload("Character").Preload("Game").Where("game_id IN ?", ids).Order("id").Find(&themes).Error; err != nil {
		return fmt.Errorf("load music themes: %w", err)
	}
	for _, t := range themes {
		i := index[*t.GameID]
		details[i].MusicThemes = append(details[i].MusicThemes, t)
	}
	return nil
}

// Add inserts game and assigns its ID.
func (r *GameRepository) Add(game *models.Game) error {
	return r.DB.Omit(clause.Associations).Create(game).Error
}

// Update replaces the scalar fields of an existing game.
func (r *GameRepository) Update(game *models.Game) error {
	found, err := exists(r.DB, &models.Game{}, game.ID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("Game", game.ID)
	}
	return r.DB.Model(game).
		Select("Title", "GameNumber", "ImageURL", "UpdatedAt").
		Updates(game).Error
}

// Delete removes a game, its character links, and detaches its music themes.
func (r *GameRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.GameCharacter{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MusicTheme{}).Where("game_id = ?", id).Update("game_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("Game", id)
		}
		return nil
	})
}

// LinkCharacter records that the character appears in the game.
// Linking an already linked pair is a no-op.
func (r *GameRepository) LinkCharacter(gameID, characterID uint) error {
	if err := r.requirePair(gameID, characterID); err != nil {
		return err
	}

	link := models.GameCharacter{GameID: gameID, CharacterID: characterID}
	return r.DB.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// UnlinkCharacter removes the link between the character and the game.
// It fails with ErrNotFound when either entity or the link itself is missing.
func (r *GameRepository) UnlinkCharacter(gameID, characterID uint) error {
	if err := r.requirePair(gameID, characterID); err != nil {
		return err
	}

	result := r.DB.Where("game_id = ? AND character_id = ?", gameID, characterID).Delete(&models.GameCharacter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("character %d is not linked to game %d: %w", characterID, gameID, ErrNotFound)
	}
	return nil
}

// AttachMusicTheme inserts a theme belonging to the game identified by theme.GameID.
// The theme's character must exist when set.
func (r *GameRepository) AttachMusicTheme(theme *models.MusicTheme) error {
	if theme.GameID == nil {
		return fmt.Errorf("music theme has no game: %w", ErrNotFound)
	}
	themes := &MusicThemeRepository{DB: r.DB}
	return themes.Add(theme)
}

func (r *GameRepository) requirePair(gameID, characterID uint) error {
	found, err := exists(r.DB, &models.Game{}, gameID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("Game", gameID)
	}
	found, err = exists(r.DB, &models.Character{}, characterID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("Character", characterID)
	}
	return nil
}
