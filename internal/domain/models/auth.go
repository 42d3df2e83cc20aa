package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the JWT claims this service cares about. The user's
// identity is the token subject; everything else is informational.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// UserID returns the authenticated user's ID (the token subject).
func (c *AccessClaims) UserID() string {
	return c.Subject
}
