package handler

import (
	"net/http"

	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// GetCharacters godoc
// @Summary      List characters
// @Tags         characters
// @Produce      json
// @Success      200  {array}   dto.CharacterBasic
// @Router       /characters [get]
func (h *Handler) GetCharacters(c *gin.Context) {
	characters, err := h.repo(c).Characters.GetAll()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewCharacterBasics(characters))
}

// GetCharactersWithGames godoc
// @Summary      List characters with their games
// @Description  Music themes are not loaded by this listing and are returned empty.
// @Tags         characters
// @Produce      json
// @Success      200  {array}   dto.CharacterDetail
// @Router       /characters/WithGames [get]
func (h *Handler) GetCharactersWithGames(c *gin.Context) {
	details, err := h.repo(c).Characters.GetAllWithGames()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewCharacterDetails(details))
}

// GetCharacterByID godoc
// @Summary      Get a character
// @Tags         characters
// @Produce      json
// @Param        id   path      int  true  "Character ID"
// @Success      200  {object}  dto.CharacterDetail
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Character not found"
// @Router       /characters/{id} [get]
func (h *Handler) GetCharacterByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.repo(c).Characters.GetWithDetails(id)
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewCharacterDetail(*details))
}

// CreateCharacter godoc
// @Summary      Create a character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        input body      dto.CharacterBasic true "Character"
// @Success      201   {object}  dto.CharacterBasic
// @Failure      400   {object}  middleware.ValidationProblem
// @Router       /characters [post]
func (h *Handler) CreateCharacter(c *gin.Context) {
	var input dto.CharacterBasic
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.CharacterBasic(input).Err()) {
		return
	}

	character := input.ToModel()
	character.ID = 0
	if fail(c, h.repo(c).Characters.Add(&character)) {
		return
	}

	location(c, "characters", character.ID)
	c.JSON(http.StatusCreated, dto.NewCharacterBasic(character))
}

// UpdateCharacter godoc
// @Summary      Update a character
// @Description  Replaces the scalar fields and abilities of a character. The body ID must match the path ID.
// @Tags         characters
// @Accept       json
// @Param        id    path      int                true  "Character ID"
// @Param        input body      dto.CharacterBasic true  "Character"
// @Success      204
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      404   {object}  middleware.ErrorResponse "Character not found"
// @Router       /characters/{id} [put]
func (h *Handler) UpdateCharacter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input dto.CharacterBasic
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.CharacterBasic(input).Err()) {
		return
	}
	if uint(input.ID) != id {
		idMismatch(c)
		return
	}

	character := input.ToModel()
	if fail(c, h.repo(c).Characters.Update(&character)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCharacter godoc
// @Summary      Delete a character
// @Description  Deletes a character, its game links, and detaches its music themes.
// @Tags         characters
// @Param        id   path      int  true  "Character ID"
// @Success      204
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Character not found"
// @Router       /characters/{id} [delete]
func (h *Handler) DeleteCharacter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if fail(c, h.repo(c).Characters.Delete(id)) {
		return
	}
	c.Status(http.StatusNoContent)
}
