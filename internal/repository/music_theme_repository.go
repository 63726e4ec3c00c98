package repository

import (
	"touhoucatalog/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MusicThemeRepository reads and writes music themes.
// Every read preloads the theme's Game and Character.
type MusicThemeRepository struct {
	DB *gorm.DB
}

func (r *MusicThemeRepository) withRelations() *gorm.DB {
	return r.DB.Preload("Character").Preload("Game")
}

func (r *MusicThemeRepository) GetAll() ([]models.MusicTheme, error) {
	var themes []models.MusicTheme
	if err := r.withRelations().Order("id").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

func (r *MusicThemeRepository) GetByID(id uint) (*models.MusicTheme, error) {
	var theme models.MusicTheme
	if err := first(r.withRelations(), &theme, "MusicTheme", id); err != nil {
		return nil, err
	}
	return &theme, nil
}

// ListByGame returns the themes of a game. An unknown game yields an empty list.
func (r *MusicThemeRepository) ListByGame(gameID uint) ([]models.MusicTheme, error) {
	var themes []models.MusicTheme
	if err := r.withRelations().Where("game_id = ?", gameID).Order("id").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// ListByCharacter returns the themes of a character. An unknown character yields an empty list.
func (r *MusicThemeRepository) ListByCharacter(characterID uint) ([]models.MusicTheme, error) {
	var themes []models.MusicTheme
	if err := r.withRelations().Where("character_id = ?", characterID).Order("id").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// ListUnlinked returns themes attached to neither a game nor a character.
func (r *MusicThemeRepository) ListUnlinked() ([]models.MusicTheme, error) {
	var themes []models.MusicTheme
	if err := r.DB.Where("game_id IS NULL AND character_id IS NULL").Order("id").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// Add inserts theme after checking that its references resolve.
// On success theme.Game and theme.Character are populated.
func (r *MusicThemeRepository) Add(theme *models.MusicTheme) error {
	if err := r.checkReferences(theme); err != nil {
		return err
	}
	if err := r.DB.Omit(clause.Associations).Create(theme).Error; err != nil {
		return err
	}
	return r.loadRelations(theme)
}

// Update replaces the title and both references of an existing theme.
func (r *MusicThemeRepository) Update(theme *models.MusicTheme) error {
	found, err := exists(r.DB, &models.MusicTheme{}, theme.ID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("MusicTheme", theme.ID)
	}
	if err := r.checkReferences(theme); err != nil {
		return err
	}
	return r.DB.Model(theme).
		Select("Title", "CharacterID", "GameID", "UpdatedAt").
		Updates(theme).Error
}

func (r *MusicThemeRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.MusicTheme{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("MusicTheme", id)
	}
	return nil
}

func (r *MusicThemeRepository) checkReferences(theme *models.MusicTheme) error {
	if theme.GameID != nil {
		found, err := exists(r.DB, &models.Game{}, *theme.GameID)
		if err != nil {
			return err
		}
		if !found {
			return notFound("Game", *theme.GameID)
		}
	}
	if theme.CharacterID != nil {
		found, err := exists(r.DB, &models.Character{}, *theme.CharacterID)
		if err != nil {
			return err
		}
		if !found {
			return notFound("Character", *theme.CharacterID)
		}
	}
	return nil
}

func (r *MusicThemeRepository) loadRelations(theme *models.MusicTheme) error {
	theme.Game = nil
	theme.Character = nil
	if theme.GameID != nil {
		game, err := (&GameRepository{DB: r.DB}).GetByID(*theme.GameID)
		if err != nil {
			return err
		}
		theme.Game = game
	}
	if theme.CharacterID != nil {
		character, err := (&CharacterRepository{DB: r.DB}).GetByID(*theme.CharacterID)
		if err != nil {
			return err
		}
		theme.Character = character
	}
	return nil
}
