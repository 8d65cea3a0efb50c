package model

import "time"

// Group 帖子话题分组，slug 作为路由键；由运营侧离线创建
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Group) TableName() string { return "groups" }

func (g Group) String() string { return g.Title }
