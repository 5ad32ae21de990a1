package controllers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/suranga-printers/print-shop-api/services"
	"github.com/suranga-printers/print-shop-api/utils"
)

// ServeUpload handles GET /uploads/*key - streams a file kept by the local storage backend
func ServeUpload(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Filename is required")
		return
	}

	local, ok := services.GetFileStorage().(*services.LocalStorage)
	if !ok {
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
		return
	}

	path, err := local.Path(key)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", "Invalid filename")
		return
	}

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "File not found")
		return
	}

	c.Header("Content-Type", utils.ContentType(path))
	c.Header("Cache-Control", "public, max-age=86400")
	c.File(path)
}
