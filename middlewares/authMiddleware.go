package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/gin-gonic/gin"
)

type authString string

// AuthMiddleware decodes the identity provider's bearer token into the user
// profile. Requests without a token proceed unauthenticated; route gates
// decide what that may reach.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		auth = strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, _ := validate.Claims.(*utils.UserProfileClaim)

		ctx := context.WithValue(c.Request.Context(), authString("auth"), claim)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CtxProfile(ctx context.Context) *utils.UserProfileClaim {
	raw, _ := ctx.Value(authString("auth")).(*utils.UserProfileClaim)
	return raw
}

// RequireAdmin gates the administrative tools (price conversion, bulk import,
// backup/restore, bulk deletion).
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CtxProfile(c.Request.Context())
		if profile == nil || !profile.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": utils.ErrorNotAuthorized.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission gates a form-level route on one named permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CtxProfile(c.Request.Context())
		if profile == nil || !profile.HasPermission(permission) {
			c.JSON(http.StatusForbidden, gin.H{"error": utils.ErrorNotAuthorized.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}
