package domain

import "time"

// ArticleStatus controls an article's visibility.
type ArticleStatus string

const (
	StatusPublic  ArticleStatus = "PUBLIC"
	StatusPrivate ArticleStatus = "PRIVATE"
)

// Valid reports whether s is a known status value.
func (s ArticleStatus) Valid() bool {
	return s == StatusPublic || s == StatusPrivate
}

// Article is a board post. Author is the display name stamped at creation;
// AuthorID is the creating user's id and the value ownership checks run
// against.
type Article struct {
	ID        string        `json:"id"`
	Author    string        `json:"author"`
	Title     string        `json:"title"`
	Contents  string        `json:"contents"`
	Status    ArticleStatus `json:"status"`
	AuthorID  string        `json:"author_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
