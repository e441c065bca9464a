package auth

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	ExplorerID int    `json:"explorer_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Link ties one provider identity to an explorer.
type Link struct {
	ExplorerID     int
	Provider       string
	ProviderUserID string
	ProviderEmail  string
}
