package handlers

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const thumbSize = 400

// Index lists all posts, newest first. The rendered response is cached
// by the pagecache middleware in front of this handler.
func Index(c *gin.Context) {
	var posts []models.Post
	page, err := utils.Paginate(c, models.PostsNewestFirst(), config.POSTS_PER_PAGE, &posts)
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{
		"index":  true,
		"follow": false,
		"posts":  posts,
		"page":   page,
	})
}

func GroupPosts(c *gin.Context) {
	group, found := models.GroupBySlug(c.Param("slug"))
	if !found {
		NotFound(c)
		return
	}
	var posts []models.Post
	query := models.PostsNewestFirst().Where("posts.group_id = ?", group.ID)
	page, err := utils.Paginate(c, query, config.POSTS_PER_PAGE, &posts)
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{
		"group": group,
		"posts": posts,
		"page":  page,
	})
}

func Profile(c *gin.Context) {
	author, found := models.UserByUsername(c.Param("username"))
	if !found {
		NotFound(c)
		return
	}
	var posts []models.Post
	query := models.PostsNewestFirst().Where("posts.author_id = ?", author.ID)
	page, err := utils.Paginate(c, query, config.POSTS_PER_PAGE, &posts)
	if err != nil {
		serverError(c)
		return
	}
	following := false
	if userID := auth.LoadSession(c).UserID(); userID != 0 {
		following = models.FollowExists(userID, author.ID)
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"following": following,
		"posts":     posts,
		"page":      page,
	})
}

func PostDetail(c *gin.Context) {
	post, found := postFromParam(c)
	if !found {
		NotFound(c)
		return
	}
	render(c, http.StatusOK, "post_detail.tmpl", gin.H{
		"post":     post,
		"comments": models.CommentsForPost(post.ID),
		"errors":   map[string]string{},
	})
}

func PostCreateForm(c *gin.Context, user *models.User) {
	render(c, http.StatusOK, "create_post.tmpl", gin.H{
		"is_edit": false,
		"form":    PostForm{},
		"groups":  models.GroupsAll(),
		"errors":  map[string]string{},
	})
}

func PostCreate(c *gin.Context, user *models.User) {
	form := PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	groupID, errors := form.Validate()
	if len(errors) > 0 {
		render(c, http.StatusOK, "create_post.tmpl", gin.H{
			"is_edit": false,
			"form":    form,
			"groups":  models.GroupsAll(),
			"errors":  errors,
		})
		return
	}
	post := models.Post{
		AuthorID: user.ID,
		GroupID:  groupID,
		Text:     form.Text,
	}
	var err error
	if post.ImagePath, post.ThumbPath, err = savePostImage(c); err != nil {
		serverError(c)
		return
	}
	if db.Instance.Create(&post).Error != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, found := postFromParam(c)
	if !found {
		NotFound(c)
		return
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
		return
	}
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	render(c, http.StatusOK, "create_post.tmpl", gin.H{
		"is_edit": true,
		"post":    post,
		"form":    form,
		"groups":  models.GroupsAll(),
		"errors":  map[string]string{},
	})
}

func PostEdit(c *gin.Context, user *models.User) {
	post, found := postFromParam(c)
	if !found {
		NotFound(c)
		return
	}
	detailURL := "/posts/" + strconv.FormatUint(post.ID, 10) + "/"
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, detailURL)
		return
	}
	form := PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	groupID, errors := form.Validate()
	if len(errors) > 0 {
		render(c, http.StatusOK, "create_post.tmpl", gin.H{
			"is_edit": true,
			"post":    post,
			"form":    form,
			"groups":  models.GroupsAll(),
			"errors":  errors,
		})
		return
	}
	updates := map[string]interface{}{
		"text":     form.Text,
		"group_id": groupID,
	}
	if imagePath, thumbPath, err := savePostImage(c); err != nil {
		serverError(c)
		return
	} else if imagePath != "" {
		updates["image_path"] = imagePath
		updates["thumb_path"] = thumbPath
	}
	// Author and creation time stay as they are
	if db.Instance.Model(&post).Updates(updates).Error != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, detailURL)
}

func postFromParam(c *gin.Context) (models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return models.Post{}, false
	}
	return models.PostByID(id)
}

// savePostImage stores an optional uploaded image plus a JPEG thumbnail
// and returns their storage paths. No file attached is not an error.
func savePostImage(c *gin.Context) (imagePath, thumbPath string, err error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", "", nil
	}
	name := uuid.New().String()
	imagePath = "posts/" + name + strings.ToLower(filepath.Ext(file.Filename))

	reader, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer reader.Close()
	if _, err = storage.Instance.Save(imagePath, reader); err != nil {
		return "", "", err
	}

	thumbReader, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer thumbReader.Close()
	var thumb bytes.Buffer
	if _, thumbErr := utils.CreateThumb(thumbSize, thumbReader, &thumb); thumbErr == nil {
		thumbPath = "posts/thumb_" + name + ".jpg"
		if _, err = storage.Instance.Save(thumbPath, &thumb); err != nil {
			return "", "", err
		}
	}
	return imagePath, thumbPath, nil
}
