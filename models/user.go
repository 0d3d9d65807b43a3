package models

import (
	"yatube/db"
	"yatube/utils"

	"github.com/pquerna/otp/totp"
)

type User struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UpdatedAt  int64
	Username   string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Email      string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Name       string `gorm:"type:varchar(100)"`
	Password   string `gorm:"type:varchar(128)"`
	PassSalt   string `gorm:"type:varchar(200)"`
	TotpSecret string `gorm:"type:varchar(200)"` // empty = 2FA disabled
}

const saltSize = 60

func UserCreate(username, email, name, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Email = email
	u.Name = name
	u.SetPassword(plainTextPassword)
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

// UserLogin verifies the password and, for accounts with 2FA enabled,
// the one-time code.
func UserLogin(username, plainTextPassword, otpCode string) (u User, success bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	if u.TotpSecret != "" && !totp.Validate(otpCode, u.TotpSecret) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, found bool) {
	return u, db.Instance.First(&u, "username = ?", username).Error == nil
}
