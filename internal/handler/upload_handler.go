package handler

import (
	"net/http"

	"topreceit/backend/internal/logger"
	"topreceit/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize caps uploads at 10 MiB, matching what the mobile client
// produces after compression.
const maxImageSize = 10 << 20

// UploadHandler accepts image uploads and stores them in the object store.
type UploadHandler struct {
	store *storage.ImageStore
}

func NewUploadHandler(store *storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Stores the image and returns its public URL for use on
// @Description  recipes and avatars.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file"
// @Success      201  {object}  map[string]string "{"url": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}
	defer file.Close()

	url, err := h.store.Upload(
		c.Request.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	if err != nil {
		logger.Log.Error("failed to upload image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
