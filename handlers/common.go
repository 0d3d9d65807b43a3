package handlers

import (
	"net/http"

	"yatube/auth"

	"github.com/gin-gonic/gin"
)

// render adds the signed-in user to the template context so the shared
// header can show the right navigation.
func render(c *gin.Context, status int, template string, data gin.H) {
	user := auth.LoadSession(c).User()
	data["user"] = user
	data["authenticated"] = user.ID != 0
	c.HTML(status, template, data)
}

func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
}

func serverError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "500.tmpl", gin.H{})
}

// ServerError renders the 500 page; wired as the panic recovery handler.
func ServerError(c *gin.Context, _ interface{}) {
	serverError(c)
	c.Abort()
}
