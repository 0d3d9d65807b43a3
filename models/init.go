package models

import (
	"yatube/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Group{})
	db.Instance.AutoMigrate(&Post{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Follow{})
}
