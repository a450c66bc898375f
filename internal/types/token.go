package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in an access token. The user id travels in the
// registered "sub" claim.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewBearerToken wraps an encoded token in the response shape.
func NewBearerToken(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer"}
}
