package token

import "github.com/golang-jwt/jwt/v5"

// Claim is the decoded bearer payload. Identity issuance lives in the auth
// service; this service only reads the claims it needs for ownership and
// operator checks.
type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

type Metadata struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

const RoleAdmin = "admin"

func (c *Claim) IsAdmin() bool {
	return c.Metadata.Role == RoleAdmin
}
