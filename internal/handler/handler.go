package handler

import (
	"fmt"
	"strconv"

	"touhoucatalog/backend/internal/middleware"
	"touhoucatalog/backend/internal/repository"
	"touhoucatalog/backend/internal/upload"

	"github.com/gin-gonic/gin"
)

// Handler serves the catalog API.
type Handler struct {
	store          *repository.Store
	images         *upload.ImageStore
	maxUploadBytes int64
}

// New creates a Handler. Each request runs on store.WithContext(request context).
func New(store *repository.Store, images *upload.ImageStore, maxUploadBytes int64) *Handler {
	return &Handler{store: store, images: images, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes mounts the catalog routes on api.
func RegisterRoutes(api *gin.RouterGroup, h *Handler) {
	games := api.Group("/games")
	{
		games.GET("", h.GetGames)
		games.GET("/WithCharacters", h.GetGamesWithCharacters) // Must be before /:id
		games.GET("/:id", h.GetGameByID)
		games.POST("", h.CreateGame)
		games.PUT("/:id", h.UpdateGame)
		games.DELETE("/:id", h.DeleteGame)

		games.POST("/:id/characters/:characterId", h.AddCharacterToGame)
		games.DELETE("/:id/characters/:characterId", h.RemoveCharacterFromGame)
		games.POST("/:id/musicthemes", h.AddMusicThemeToGame)
	}

	characters := api.Group("/characters")
	{
		characters.GET("", h.GetCharacters)
		characters.GET("/WithGames", h.GetCharactersWithGames)
		characters.GET("/:id", h.GetCharacterByID)
		characters.POST("", h.CreateCharacter)
		characters.PUT("/:id", h.UpdateCharacter)
		characters.DELETE("/:id", h.DeleteCharacter)
	}

	themes := api.Group("/musicthemes")
	{
		themes.GET("", h.GetMusicThemes)
		themes.GET("/unlinked", h.GetUnlinkedMusicThemes)
		themes.GET("/game/:gameId", h.GetMusicThemesByGame)
		themes.GET("/character/:characterId", h.GetMusicThemesByCharacter)
		themes.GET("/:id", h.GetMusicThemeByID)
		themes.POST("", h.CreateMusicTheme)
		themes.PUT("/:id", h.UpdateMusicTheme)
		themes.DELETE("/:id", h.DeleteMusicTheme)
	}

	api.POST("/fileupload/image", h.UploadImage)
}

// repo returns the store scoped to the current request.
func (h *Handler) repo(c *gin.Context) *repository.Store {
	return h.store.WithContext(c.Request.Context())
}

// parseID reads a positive integer path parameter. On failure it records a 400 error.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		_ = c.Error(middleware.BadRequest(fmt.Sprintf("Invalid %s", name)))
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into dst. On failure it records a 400 error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(middleware.BadRequest(err.Error()))
		return false
	}
	return true
}

// fail records err for the error middleware. It reports whether err was non-nil.
func fail(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	_ = c.Error(err)
	return true
}

func idMismatch(c *gin.Context) {
	_ = c.Error(middleware.BadRequest("ID in path does not match ID in body"))
}

func location(c *gin.Context, resource string, id uint) {
	c.Header("Location", fmt.Sprintf("/api/%s/%d", resource, id))
}
