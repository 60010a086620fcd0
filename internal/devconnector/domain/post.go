package domain

import (
	"slices"
	"time"
)

// Post is stored as a single document; likes and comments live inside it.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

type Like struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether userID has liked the post.
func (p *Post) LikedBy(userID string) bool {
	return slices.ContainsFunc(p.Likes, func(l Like) bool { return l.UserID == userID })
}

// AddLike puts l first. Callers check LikedBy beforehand.
func (p *Post) AddLike(l Like) {
	p.Likes = slices.Insert(p.Likes, 0, l)
}

// RemoveLike drops userID's like, reporting whether there was one.
func (p *Post) RemoveLike(userID string) bool {
	i := slices.IndexFunc(p.Likes, func(l Like) bool { return l.UserID == userID })
	if i < 0 {
		return false
	}
	p.Likes = slices.Delete(p.Likes, i, i+1)
	return true
}

// AddComment puts c first.
func (p *Post) AddComment(c Comment) {
	p.Comments = slices.Insert(p.Comments, 0, c)
}

// Comment looks a comment up by id.
func (p *Post) Comment(id string) (Comment, bool) {
	i := slices.IndexFunc(p.Comments, func(c Comment) bool { return c.ID == id })
	if i < 0 {
		return Comment{}, false
	}
	return p.Comments[i], true
}

// RemoveComment drops the comment with the given id.
func (p *Post) RemoveComment(id string) bool {
	i := slices.IndexFunc(p.Comments, func(c Comment) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	p.Comments = slices.Delete(p.Comments, i, i+1)
	return true
}

// Normalize replaces nil lists with empty ones.
func (p *Post) Normalize() {
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
