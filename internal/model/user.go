package model

import "time"

// User 作者 / 读者账号，身份由 username 唯一标识
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(254)"`
	Password  string `gorm:"type:varchar(128);not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
