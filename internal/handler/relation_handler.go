package handler

import (
	"net/http"

	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// AddCharacterToGame godoc
// @Summary      Link a character to a game
// @Description  Records that the character appears in the game. Linking twice is a no-op.
// @Tags         relations
// @Param        id          path  int  true  "Game ID"
// @Param        characterId path  int  true  "Character ID"
// @Success      204
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Game or character not found"
// @Router       /games/{id}/characters/{characterId} [post]
func (h *Handler) AddCharacterToGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}
	characterID, ok := parseID(c, "characterId")
	if !ok {
		return
	}
	if fail(c, h.repo(c).Games.LinkCharacter(gameID, characterID)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveCharacterFromGame godoc
// @Summary      Unlink a character from a game
// @Tags         relations
// @Param        id          path  int  true  "Game ID"
// @Param        characterId path  int  true  "Character ID"
// @Success      204
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Game, character or link not found"
// @Router       /games/{id}/characters/{characterId} [delete]
func (h *Handler) RemoveCharacterFromGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}
	characterID, ok := parseID(c, "characterId")
	if !ok {
		return
	}
	if fail(c, h.repo(c).Games.UnlinkCharacter(gameID, characterID)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMusicThemeToGame godoc
// @Summary      Create a music theme for a game
// @Description  Creates a theme belonging to the game in the path. The gameId in the body is ignored.
// @Tags         relations
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Game ID"
// @Param        input body      dto.MusicTheme  true  "Music theme"
// @Success      201   {object}  dto.MusicTheme
// @Failure      400   {object}  middleware.ValidationProblem
// @Failure      404   {object}  middleware.ErrorResponse "Game or character not found"
// @Router       /games/{id}/musicthemes [post]
func (h *Handler) AddMusicThemeToGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
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

	theme := input.ToModel()
	theme.ID = 0
	theme.GameID = &gameID
	if fail(c, h.repo(c).Games.AttachMusicTheme(&theme)) {
		return
	}

	location(c, "musicthemes", theme.ID)
	c.JSON(http.StatusCreated, dto.NewMusicTheme(theme))
}
