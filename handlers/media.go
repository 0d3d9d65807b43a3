package handlers

import (
	"strings"

	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// MediaServe hands out uploaded post images by storage path.
func MediaServe(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		NotFound(c)
		return
	}
	storage.Instance.Serve(path, c.Request, c.Writer)
}
