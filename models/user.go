package models

import "time"

// User represents a registered account. It is owned by the users storage
// collection; the auth core only reads it during login, profile lookup and
// token resolution.
type User struct {
	// ID is the unique identifier of the user. Serialized as "_id" to stay
	// wire-compatible with the original document-store API.
	ID string `json:"_id"`

	// Username is the unique login name used during authentication.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized and never exposed past the service layer.
	PasswordHash string `json:"-"`

	// Bio is a free-form self description. May be empty.
	Bio string `json:"bio"`

	// Image is a URL to the user's avatar. May be empty.
	Image string `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the public subset of a User that is safe to embed in responses
// and to attach to a request context after authentication. It deliberately
// carries no credential material.
type Profile struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Profile strips the user down to its publicly visible fields.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
