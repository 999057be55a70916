package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the claim set embedded in our JWT tokens. The user id is
// numeric and the role is a single value; the username is carried for
// display only.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Role      Role   `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
