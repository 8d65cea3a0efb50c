package model

import "time"

// Post 内容主体；feed 按 created_at DESC, id DESC 排序保证分页确定性
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author    User      `gorm:"foreignKey:AuthorID"`
	GroupID   *uint     `gorm:"index:idx_post_group"`
	Group     *Group    `gorm:"foreignKey:GroupID"`
	Image     string    `gorm:"type:varchar(255)"` // media 相对路径，可为空
	CreatedAt time.Time `gorm:"index:idx_post_created"`
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }

const previewRunes = 15

// String returns the first 15 runes of the text, the post's display name.
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) <= previewRunes {
		return p.Text
	}
	return string(r[:previewRunes])
}
