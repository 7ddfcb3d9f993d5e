package models

import "time"

// Post is a blog entry authored by a single user.
type Post struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	TagList   []string  `json:"tagList"`
	AuthorID  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Author is the populated public profile of the post's author.
	// Filled in by the service layer, not stored.
	Author Profile `json:"author"`
}

// PostPatch describes a partial update of a post. Nil fields are left
// untouched.
type PostPatch struct {
	Title   *string  `json:"title,omitempty"`
	Body    *string  `json:"body,omitempty"`
	TagList []string `json:"tagList,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
