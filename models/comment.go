package models

import "time"

// Comment is a remark left on a post by a user.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"post"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Author is the populated public profile of the comment's author.
	Author Profile `json:"author"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
