package model

import "time"

// Comment 帖子评论，创建后不可编辑
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"index:idx_comment_post;not null"`
	AuthorID  string `gorm:"type:varchar(36);not null"`
	Author    User   `gorm:"foreignKey:AuthorID"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
