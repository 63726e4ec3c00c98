package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"touhoucatalog/backend/internal/middleware"
	"touhoucatalog/backend/internal/upload"

	"github.com/gin-gonic/gin"
)

// ImageUploadInput is the multipart form accepted by UploadImage.
type ImageUploadInput struct {
	File *multipart.FileHeader `form:"file" binding:"required" swaggerignore:"true"`
}

// ImageUploadResponse carries the relative path of a stored image.
type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl" example:"Images/0b7c1f9e-2d1c-4a51-9d0e-6c3f3f1a2b44.png"`
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Stores a .jpg, .jpeg, .png or .gif file under a generated name and returns its relative path.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData  file  true  "Image file"
// @Success      200  {object}  ImageUploadResponse
// @Failure      400  {object}  middleware.ErrorResponse
// @Failure      413  {object}  middleware.ErrorResponse
// @Router       /fileupload/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var input ImageUploadInput
	if err := c.ShouldBind(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(&middleware.AppError{Code: http.StatusRequestEntityTooLarge, Message: "File exceeds the maximum upload size"})
			return
		}
		_ = c.Error(middleware.BadRequest("No file uploaded"))
		return
	}

	url, err := h.images.Save(input.File)
	switch {
	case errors.Is(err, upload.ErrEmptyFile):
		_ = c.Error(middleware.BadRequest("No file uploaded"))
		return
	case errors.Is(err, upload.ErrUnsupportedType):
		_ = c.Error(middleware.BadRequest("Invalid file type. Only images are allowed."))
		return
	case err != nil:
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ImageUploadResponse{ImageURL: url})
}
