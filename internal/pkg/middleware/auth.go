package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/httputils"
	"github.com/luminalib/luminalib/pkg/errors"
)

// UserResolver turns a bearer token into the authenticated user.
type UserResolver func(ctx context.Context, token string) (*model.User, error)

// Auth extracts the bearer token and stores the resolved user in the
// gin context.
func Auth(resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputils.WriteResponse(c, errors.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[len("Bearer "):])
		}

		user, err := resolve(c.Request.Context(), token)
		if err != nil {
			httputils.WriteResponse(c, err, nil)
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. 必须在 Auth
// 之后挂载.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			httputils.WriteResponse(c, errors.ErrPermissionDenied, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
