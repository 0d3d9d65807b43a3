package models

import "yatube/db"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	AuthorID  uint64
	Author    User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

// CommentsForPost lists a post's comments, newest first.
func CommentsForPost(postID uint64) (result []Comment) {
	db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&result)
	return
}
