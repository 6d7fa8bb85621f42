package utils

import (
	"fmt"
	"os"

	"github.com/dgrijalva/jwt-go"
)

// UserProfileClaim is the identity provider's token payload. Authorization is
// otherwise external to this core; business logic only reads IsAdmin and the
// permission list.
type UserProfileClaim struct {
	UserID      string   `json:"user_id"`
	IsAdmin     bool     `json:"is_admin"`
	Permissions []string `json:"permissions"`
	jwt.StandardClaims
}

var jwtSecret = []byte(getJwtSecret())

func getJwtSecret() string {
	secret := os.Getenv("API_SECRET")
	if secret == "" {
		return "UsmanGlobal-Secret"
	}
	return secret
}

func JwtValidate(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &UserProfileClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
}

func (c *UserProfileClaim) HasPermission(permission string) bool {
	if c.IsAdmin {
		return true
	}
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
