package repository

import (
	"fmt"

	"touhoucatalog/backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CharacterRepository reads and writes characters.
type CharacterRepository struct {
	DB *gorm.DB
}

func (r *CharacterRepository) GetAll() ([]models.Character, error) {
	var characters []models.Character
	if err := r.DB.Order("id").Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *CharacterRepository) GetByID(id uint) (*models.Character, error) {
	var character models.Character
	if err := first(r.DB, &character, "Character", id); err != nil {
		return nil, err
	}
	return &character, nil
}

// GetWithDetails loads a character with its games and music themes.
// Themes carry their Game and Character so projections can show both names.
func (r *CharacterRepository) GetWithDetails(id uint) (*models.CharacterDetails, error) {
	character, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	details := []models.CharacterDetails{{Character: *character}}
	if err := r.loadGames(details); err != nil {
		return nil, err
	}

	var themes []models.MusicTheme
	if err := r.DB.Preload("Character").Preload("Game").Where("character_id = ?", id).Order("id").Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("load music themes: %w", err)
	}
	details[0].MusicThemes = append(details[0].MusicThemes, themes...)
	return &details[0], nil
}

// GetAllWithGames loads every character with the games it appears in.
// MusicThemes is left empty.
func (r *CharacterRepository) GetAllWithGames() ([]models.CharacterDetails, error) {
	characters, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	details := make([]models.CharacterDetails, len(characters))
	for i, c := range characters {
		details[i] = models.CharacterDetails{Character: c}
	}
	if err := r.loadGames(details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *CharacterRepository) loadGames(details []models.CharacterDetails) error {
	ids := make([]uint, len(details))
	index := make(map[uint]int, len(details))
	for i, d := range details {
		ids[i] = d.ID
		index[d.ID] = i
		details[i].Games = []models.Game{}
		details[i].MusicThemes = []models.MusicTheme{}
	}
	if len(ids) == 0 {
		return nil
	}

	type row struct {
		models.Game
		LinkedCharacterID uint
	}
	var rows []row
	err := r.DB.Model(&models.Game{}).
		Select("games.*, game_characters.character_id AS linked_character_id").
		Joins("JOIN game_characters ON game_characters.game_id = games.id").
		Where("game_characters.character_id IN ?", ids).
		Order("games.game_number, games.id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	for _, row := range rows {
		i := index[row.LinkedCharacterID]
		details[i].Games = append(details[i].Games, row.Game)
	}
	return nil
}

// Add inserts character and assigns its ID.
func (r *CharacterRepository) Add(character *models.Character) error {
	if character.Abilities == nil {
		character.Abilities = datatypes.JSONSlice[string]{}
	}
	return r.DB.Omit(clause.Associations).Create(character).Error
}

// Update replaces the scalar fields of an existing character.
func (r *CharacterRepository) Update(character *models.Character) error {
	found, err := exists(r.DB, &models.Character{}, character.ID)
	if err != nil {
		return err
	}
	if !found {
		return notFound("Character", character.ID)
	}
	if character.Abilities == nil {
		character.Abilities = datatypes.JSONSlice[string]{}
	}
	return r.DB.Model(character).
		Select("Name", "Description", "Abilities", "ImageURL", "UpdatedAt").
		Updates(character).Error
}

// Delete removes a character, its game links, and detaches its music themes.
func (r *CharacterRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&models.GameCharacter{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MusicTheme{}).Where("character_id = ?", id).Update("character_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Character{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("Character", id)
		}
		return nil
	})
}
