package models

import (
	"sync"
	"testing"
	"time"

	"yatube/db"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

var testDBOnce sync.Once

func setupTestDB(t *testing.T) {
	testDBOnce.Do(func() {
		db.InitTest()
		Init()
	})
}

func mustCreateUser(t *testing.T, username string) User {
	u, err := UserCreate(username, username+"@example.com", username, "password123")
	require.NoError(t, err)
	return u
}

func TestFollowConstraints(t *testing.T) {
	setupTestDB(t)
	follower := mustCreateUser(t, "follow-user")
	author := mustCreateUser(t, "follow-author")

	require.NoError(t, FollowCreate(follower.ID, author.ID))
	require.True(t, FollowExists(follower.ID, author.ID))

	// Second follow is a no-op
	require.NoError(t, FollowCreate(follower.ID, author.ID))
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", follower.ID, author.ID).
		Count(&count)
	require.EqualValues(t, 1, count)

	// The unique pair is enforced by the schema, not just the helper
	require.Error(t, db.Instance.Create(&Follow{UserID: follower.ID, AuthorID: author.ID}).Error)

	// Self-follow is rejected by the schema even when the helper is bypassed
	require.Error(t, db.Instance.Create(&Follow{UserID: follower.ID, AuthorID: follower.ID}).Error)
	// ...and silently ignored by the helper
	require.NoError(t, FollowCreate(follower.ID, follower.ID))
	require.False(t, FollowExists(follower.ID, follower.ID))

	require.NoError(t, FollowDelete(follower.ID, author.ID))
	require.False(t, FollowExists(follower.ID, author.ID))
}

func TestGroupDeleteClearsPostReference(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "group-author")
	group := Group{Title: "Cats", Slug: "cats", Description: "all about cats"}
	require.NoError(t, db.Instance.Create(&group).Error)

	post := Post{AuthorID: author.ID, GroupID: &group.ID, Text: "group post"}
	require.NoError(t, db.Instance.Create(&post).Error)

	require.NoError(t, db.Instance.Delete(&group).Error)

	var reloaded Post
	require.NoError(t, db.Instance.First(&reloaded, post.ID).Error)
	require.Nil(t, reloaded.GroupID)
	require.Equal(t, "group post", reloaded.Text)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "cascade-author")
	post := Post{AuthorID: author.ID, Text: "doomed post"}
	require.NoError(t, db.Instance.Create(&post).Error)
	comment := Comment{PostID: post.ID, AuthorID: author.ID, Text: "doomed comment"}
	require.NoError(t, db.Instance.Create(&comment).Error)

	require.NoError(t, db.Instance.Delete(&post).Error)

	var count int64
	db.Instance.Model(&Comment{}).Where("post_id = ?", post.ID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestCommentsForPostNewestFirst(t *testing.T) {
	setupTestDB(t)
	author := mustCreateUser(t, "comment-author")
	post := Post{AuthorID: author.ID, Text: "commented post"}
	require.NoError(t, db.Instance.Create(&post).Error)
	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, db.Instance.Create(&Comment{PostID: post.ID, AuthorID: author.ID, Text: text}).Error)
	}

	comments := CommentsForPost(post.ID)
	require.Len(t, comments, 3)
	require.Equal(t, "third", comments[0].Text)
	require.Equal(t, "first", comments[2].Text)
}

func TestUserLogin(t *testing.T) {
	setupTestDB(t)
	mustCreateUser(t, "login-user")

	_, success := UserLogin("login-user", "wrong", "")
	require.False(t, success)
	_, success = UserLogin("no-such-user", "password123", "")
	require.False(t, success)
	u, success := UserLogin("login-user", "password123", "")
	require.True(t, success)
	require.Equal(t, "login-user", u.Username)
}

func TestUserLoginWithTotp(t *testing.T) {
	setupTestDB(t)
	u := mustCreateUser(t, "totp-user")
	key, err := totp.Generate(totp.GenerateOpts{Issuer: "yatube", AccountName: u.Email})
	require.NoError(t, err)
	require.NoError(t, db.Instance.Model(&u).Update("totp_secret", key.Secret()).Error)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)
	wrongCode := "000000"
	if code == wrongCode {
		wrongCode = "111111"
	}

	_, success := UserLogin("totp-user", "password123", "")
	require.False(t, success)
	_, success = UserLogin("totp-user", "password123", wrongCode)
	require.False(t, success)
	_, success = UserLogin("totp-user", "password123", code)
	require.True(t, success)
}
