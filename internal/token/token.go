// Package token issues the opaque session token handed out at login.
//
// The token encodes the user's id and role as HS256 JWT claims. Nothing in
// the system verifies the signature afterwards: services gate mutating
// calls on token presence alone, and Decode reconstructs the session
// without checking it against storage. Holding any non-empty token is
// treated as being authorized.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"internconnect/internal/domain"
)

// Claims are the fields embedded in a session token.
type Claims struct {
	UserID string      `json:"id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue synthesizes a token asserting the given id and role.
func (i *Issuer) Issue(userID string, role domain.Role) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Decode extracts the embedded claims without validating the signature.
// The token's own fields are the only proof of identity.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	return claims, nil
}
