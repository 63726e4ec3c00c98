package handler

import (
	"net/http"

	"touhoucatalog/backend/internal/dto"
	"touhoucatalog/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// GetGames godoc
// @Summary      List games
// @Description  Returns every game ordered by game number, without related entities.
// @Tags         games
// @Produce      json
// @Success      200  {array}   dto.GameBasic
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.repo(c).Games.GetAll()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewGameBasics(games))
}

// GetGamesWithCharacters godoc
// @Summary      List games with details
// @Description  Returns every game with its characters and music themes.
// @Tags         games
// @Produce      json
// @Success      200  {array}   dto.GameDetail
// @Router       /games/WithCharacters [get]
func (h *Handler) GetGamesWithCharacters(c *gin.Context) {
	details, err := h.repo(c).Games.GetAllWithDetails()
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewGameDetails(details))
}

// GetGameByID godoc
// @Summary      Get a game
// @Description  Returns a single game with its characters and music themes.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  dto.GameDetail
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.repo(c).Games.GetWithDetails(id)
	if fail(c, err) {
		return
	}
	c.JSON(http.StatusOK, dto.NewGameDetail(*details))
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a game. Characters and music themes are attached through the relation endpoints.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body      dto.GameBasic true "Game"
// @Success      201   {object}  dto.GameBasic
// @Failure      400   {object}  middleware.ValidationProblem
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input dto.GameBasic
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.GameBasic(input).Err()) {
		return
	}

	game := input.ToModel()
	game.ID = 0
	if fail(c, h.repo(c).Games.Add(&game)) {
		return
	}

	location(c, "games", game.ID)
	c.JSON(http.StatusCreated, dto.NewGameBasic(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces the title, game number and image of a game. The body ID must match the path ID.
// @Tags         games
// @Accept       json
// @Param        id    path      int           true  "Game ID"
// @Param        input body      dto.GameBasic true  "Game"
// @Success      204
// @Failure      400   {object}  middleware.ErrorResponse
// @Failure      404   {object}  middleware.ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input dto.GameBasic
	if !bindJSON(c, &input) {
		return
	}
	if fail(c, validation.GameBasic(input).Err()) {
		return
	}
	if uint(input.ID) != id {
		idMismatch(c)
		return
	}

	game := input.ToModel()
	if fail(c, h.repo(c).Games.Update(&game)) {
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game, its character links, and detaches its music themes.
// @Tags         games
// @Param        id   path      int  true  "Game ID"
// @Success      204
// @Failure      400  {object}  middleware.ErrorResponse "Invalid ID"
// @Failure      404  {object}  middleware.ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if fail(c, h.repo(c).Games.Delete(id)) {
		return
	}
	c.Status(http.StatusNoContent)
}
