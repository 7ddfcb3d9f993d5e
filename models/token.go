package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every identity token. The subject
// claim holds the user ID; Username is duplicated as a custom claim so that
// a verified token is self-describing without a storage round trip.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Token is the result of issuing or verifying an identity token.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. UserID and Username
// are parsed copies of the corresponding claims, and ExpiresAt mirrors the
// "exp" claim. A Token is immutable once issued.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject the token was issued for.
	UserID string `json:"-"`

	// Username is the login name recorded at issue time.
	Username string `json:"-"`

	// ExpiresAt is the instant after which the token is no longer valid.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
