package models

import "yatube/db"

// Follow is a directed user->author subscription. Both invariants are
// enforced by the schema so they hold under concurrent writers: the pair
// is unique and a user cannot follow themselves.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_follow,unique;check:user_and_author_different,user_id <> author_id"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_follow,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func FollowExists(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}

// FollowCreate is idempotent: self-follows and duplicates are no-ops.
func FollowCreate(userID, authorID uint64) error {
	if userID == authorID || FollowExists(userID, authorID) {
		return nil
	}
	return db.Instance.Create(&Follow{UserID: userID, AuthorID: authorID}).Error
}

func FollowDelete(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? and author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}
