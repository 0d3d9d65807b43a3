package db

import (
	"yatube/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else if config.POSTGRES_DSN != "" {
		dialector = postgres.Open(config.POSTGRES_DSN)
	} else {
		// Foreign keys are off by default in SQLite; the Post->Group
		// SET NULL rule and the comment cascade depend on them
		dialector = sqlite.Open(config.SQLITE_FILE + "?_foreign_keys=on")
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// InitTest points Instance at a private in-memory database. Tests only.
func InitTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	Instance = db
}
