package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	UpdatedAt int64
	AuthorID  uint64
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	ImagePath string `gorm:"type:varchar(300)"` // storage path, empty when no image
	ThumbPath string `gorm:"type:varchar(300)"`
}

// PostsNewestFirst is the base query every post listing builds on.
func PostsNewestFirst() *gorm.DB {
	return db.Instance.Model(&Post{}).
		Preload("Author").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

func PostByID(id uint64) (p Post, found bool) {
	err := db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return p, err == nil
}

// FeedPosts returns posts whose authors the given user follows.
func FeedPosts(userID uint64) *gorm.DB {
	return PostsNewestFirst().
		Joins("join follows on follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID)
}
