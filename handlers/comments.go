package handlers

import (
	"net/http"
	"strconv"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AddComment stores a comment under the given post. An invalid (empty)
// submission is dropped without an error page; either way the user lands
// back on the post.
func AddComment(c *gin.Context, user *models.User) {
	post, found := postFromParam(c)
	if !found {
		NotFound(c)
		return
	}
	form := CommentForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	if form.Valid() {
		comment := models.Comment{
			PostID:   post.ID,
			AuthorID: user.ID,
			Text:     form.Text,
		}
		if db.Instance.Create(&comment).Error != nil {
			serverError(c)
			return
		}
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}
