package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims issued at login. Role and admin flags are
// embedded so authorization is decided from the verified token at the request
// boundary instead of re-querying the user row per call.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	AccountType  string `json:"account_type"`
	IsAdmin      bool   `json:"is_admin"`
	TokenVersion int    `json:"token_version"`
}
