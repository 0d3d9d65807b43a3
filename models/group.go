package models

import "yatube/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupBySlug(slug string) (g Group, found bool) {
	return g, db.Instance.First(&g, "slug = ?", slug).Error == nil
}

// GroupsAll feeds the group selector on the post form.
func GroupsAll() (result []Group) {
	db.Instance.Order("title").Find(&result)
	return
}
