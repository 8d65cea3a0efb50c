package handler

import (
	"time"

	"github.com/yatube/yatube/internal/model"
	"github.com/yatube/yatube/internal/service"
)

// Wire views keep password hashes and FK noise out of responses.

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type groupView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type postView struct {
	ID      uint       `json:"id"`
	Text    string     `json:"text"`
	Author  userView   `json:"author"`
	Group   *groupView `json:"group,omitempty"`
	Image   string     `json:"image,omitempty"`
	Created time.Time  `json:"created"`
}

type commentView struct {
	ID      uint      `json:"id"`
	Author  userView  `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

type pageView struct {
	Items    []postView `json:"items"`
	Count    int64      `json:"count"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func newUserView(u *model.User) userView {
	return userView{ID: u.ID, Username: u.Username}
}

func newUserViews(users []*model.User) []userView {
	out := make([]userView, len(users))
	for i, u := range users {
		out[i] = newUserView(u)
	}
	return out
}

func newGroupView(g *model.Group) *groupView {
	if g == nil {
		return nil
	}
	return &groupView{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description}
}

func newPostView(p *model.Post) postView {
	return postView{
		ID:      p.ID,
		Text:    p.Text,
		Author:  newUserView(&p.Author),
		Group:   newGroupView(p.Group),
		Image:   p.Image,
		Created: p.CreatedAt,
	}
}

func newPageView(p *service.Page) pageView {
	items := make([]postView, len(p.Items))
	for i, post := range p.Items {
		items[i] = newPostView(post)
	}
	return pageView{Items: items, Count: p.Total, Page: p.Page, PageSize: p.PageSize}
}

func newCommentViews(comments []*model.Comment) []commentView {
	out := make([]commentView, len(comments))
	for i, cm := range comments {
		out[i] = commentView{ID: cm.ID, Author: newUserView(&cm.Author), Text: cm.Text, Created: cm.CreatedAt}
	}
	return out
}
