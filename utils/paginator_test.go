package utils_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"yatube/db"
	"yatube/models"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const perPage = 10

var seedOnce sync.Once

// seedPosts creates one author with 25 posts, oldest text "post-01".
func seedPosts(t *testing.T) {
	seedOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		db.InitTest()
		models.Init()
		author, err := models.UserCreate("paging-author", "paging@example.com", "", "password123")
		require.NoError(t, err)
		for i := 1; i <= 25; i++ {
			post := models.Post{AuthorID: author.ID, Text: fmt.Sprintf("post-%02d", i)}
			require.NoError(t, db.Instance.Create(&post).Error)
		}
	})
}

func pageRequest(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/"+query, nil)
	return c
}

func TestPaginateSlices(t *testing.T) {
	seedPosts(t)
	var posts []models.Post
	page, err := utils.Paginate(pageRequest(""), models.PostsNewestFirst(), perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 3, page.NumPages)
	require.EqualValues(t, 25, page.Count)
	require.Len(t, posts, perPage)
	// Newest first: post-25 leads the first page
	require.Equal(t, "post-25", posts[0].Text)
	require.Equal(t, "post-16", posts[9].Text)
	require.False(t, page.HasPrevious())
	require.True(t, page.HasNext())

	page, err = utils.Paginate(pageRequest("?page=3"), models.PostsNewestFirst(), perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 3, page.Number)
	require.Len(t, posts, 5)
	require.Equal(t, "post-01", posts[4].Text)
	require.True(t, page.HasPrevious())
	require.False(t, page.HasNext())
}

func TestPaginateClamping(t *testing.T) {
	seedPosts(t)
	var posts []models.Post

	// Non-numeric page numbers mean the first page
	page, err := utils.Paginate(pageRequest("?page=abc"), models.PostsNewestFirst(), perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 1, page.Number)

	// Numeric but past the end clamps to the last page
	page, err = utils.Paginate(pageRequest("?page=99"), models.PostsNewestFirst(), perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 3, page.Number)
	require.Len(t, posts, 5)

	// ...and so does zero or negative
	page, err = utils.Paginate(pageRequest("?page=0"), models.PostsNewestFirst(), perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 3, page.Number)
}

func TestPaginateEmptyResult(t *testing.T) {
	seedPosts(t)
	var posts []models.Post
	query := models.PostsNewestFirst().Where("posts.text = ?", "no such post")
	page, err := utils.Paginate(pageRequest("?page=5"), query, perPage, &posts)
	require.NoError(t, err)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.NumPages)
	require.Empty(t, posts)
}
