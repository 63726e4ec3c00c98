package handler

import (
	"net/http"

	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// GetMusicThemes godoc
// @Summary      List music themes
// @Tags         musicthemes
// @Produce      json
// @Success      200  {array}   dto.MusicTheme
// @Router       /musicthemes [get]
func (h *Handler) GetMusicThemes(c *gin.Context) {
	themes, err := h.repo(c).MusicThemes.GetAll()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewMusicThemes(themes))
}

// GetUnlinkedMusicThemes godoc
// @Summary      List unlinked music themes
// @Description  Returns themes that belong to neither a game nor a character.
// @Tags         musicthemes
// @Produce      json
// @Success      200  {array}   dto.MusicTheme
// @Router       /musicthemes/unlinked [get]
func (h *Handler) GetUnlinkedMusicThemes(c *gin.Context) {
	themes, err := h.repo(c).MusicThemes.ListUnlinked()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewMusicThemes(themes))
}

// GetMusicThemeByID godoc
// @Summary      Get a music theme
// @Tags         musicthemes
// @Produce      json
// @Param        id   path      int  true  "Music theme ID"
// @Success      200  {object}  dto.MusicTheme
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Music theme not found"
// @Router       /musicthemes/{id} [get]
func (h *Handler) GetMusicThemeByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	theme, err := h.repo(c).MusicThemes.GetByID(id)
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewMusicTheme(*theme))
}

// GetMusicThemesByGame godoc
// @Summary      List music themes of a game
// @Tags         musicthemes
// @Produce      json
// @Param        gameId path      int  true  "Game ID"
// @Success      200    {array}   dto.MusicTheme
// @Failure      400    {object}  middleware.ErrorResponse "Invalid ID"
// @Router       /musicthemes/game/{gameId} [get]
func (h *Handler) GetMusicThemesByGame(c *gin.Context) {
	gameID, ok := parseID(c, "gameId")
	if !ok {
		return
	}
	themes, err := h.repo(c).MusicThemes.ListByGame(gameID)
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewMusicThemes(themes))
}

// GetMusicThemesByCharacter godoc
// @Summary      List music themes of a character
// @Tags         musicthemes
// @Produce      json
// @Param        characterId path      int  true  "Character ID"
// @Success      200         {array}   dto.MusicTheme
// @Failure      400         {object}  middleware.ErrorResponse "Invalid ID"
// @Router       /musicthemes/character/{characterId} [get]
func (h *Handler) GetMusicThemesByCharacter(c *gin.Context) {
	characterID, ok := parseID(c, "characterId")
	if !ok {
		return
	}
	themes, err := h.repo(c).MusicThemes.ListByCharacter(characterID)
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewMusicThemes(themes))
}

// CreateMusicTheme godoc
// @Summary      Create a music theme
// @Description  Both references are optional. When set they must point to existing rows.
// @Tags         musicthemes
// @Accept       json
// @Produce      json
// @Param        input body      dto.MusicTheme true "Music theme"
// @Success      201   {object}  dto.MusicTheme
// @Failure      400   {object}  middleware.ValidationProblem
// @Failure      404   {object}  middleware.ErrorResponse "Game or character not found"
// @Router       /musicthemes [post]
func (h *Handler) CreateMusicTheme(c *gin.Context) {
	var input dto.MusicTheme
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.MusicTheme(input).Err()) {
		return
	}

	theme := input.ToModel()
	theme.ID = 0
	if fail(c, h.repo(c).MusicThemes.Add(&theme)) {
		return
	}

	location(c, "musicthemes", theme.ID)
	c.JSON(http.StatusCreated, dto.NewMusicTheme(theme))
}

// UpdateMusicTheme godoc
// @Summary      Update a music theme
// @Description  Replaces the title and both references. The body ID must match the path ID.
// @Tags         musicthemes
// @Accept       json
// @Param        id    path      int            true  "Music theme ID"
// @Param        input body      dto.MusicTheme true  "Music theme"
// @Success      204
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      404   {object}  middleware.ErrorResponse "Theme, game or character not found"
// @Router       /musicthemes/{id} [put]
func (h *Handler) UpdateMusicTheme(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input dto.MusicTheme
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.MusicTheme(input).Err()) {
		return
	}
	if uint(input.ID) != id {
		idMismatch(c)
		return
	}

	theme := input.ToModel()
	if fail(c, h.repo(c).MusicThemes.Update(&theme)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMusicTheme godoc
// @Summary      Delete a music theme
// @Tags         musicthemes
// @Param        id   path      int  true  "Music theme ID"
// @Success      204
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Music theme not found"
// @Router       /musicthemes/{id} [delete]
func (h *Handler) DeleteMusicTheme(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if fail(c, h.repo(c).MusicThemes.Delete(id)) {
		return
	}
	c.Status(http.StatusNoContent)
}
