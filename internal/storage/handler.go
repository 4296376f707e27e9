package storage

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageStore is what the handlers need from the object store.
type ImageStore interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

type Handler struct {
	store ImageStore
}

func NewHandler(store ImageStore) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// POST /api/imagens
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	folder := c.PostForm("folder")

	url, err := h.store.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// --------------------------------------------------
// DELETE /api/imagens?url=...
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	if err := h.store.DeleteImage(c.Request.Context(), url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image removed"})
}
