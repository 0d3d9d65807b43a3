package handlers

import (
	"net/http"

	"yatube/config"
	"yatube/models"
	"yatube/utils"

	"github.com/gin-gonic/gin"
)

// FollowIndex is the personalized feed: posts by authors the user follows.
func FollowIndex(c *gin.Context, user *models.User) {
	var posts []models.Post
	page, err := utils.Paginate(c, models.FeedPosts(user.ID), config.POSTS_PER_PAGE, &posts)
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{
		"index":  false,
		"follow": true,
		"posts":  posts,
		"page":   page,
	})
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author, found := models.UserByUsername(c.Param("username"))
	if !found {
		NotFound(c)
		return
	}
	// Self-follows are silently ignored inside FollowCreate
	if models.FollowCreate(user.ID, author.ID) != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, found := models.UserByUsername(c.Param("username"))
	if !found {
		NotFound(c)
		return
	}
	if models.FollowDelete(user.ID, author.ID) != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
