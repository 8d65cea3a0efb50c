package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// LoginPath is where unauthenticated clients are sent, carrying the
	// originally requested path in the next parameter.
	LoginPath = "/auth/login/"

	ctxUserID   = "user_id"
	ctxUsername = "username"
	authCookie  = "auth"
)

// LoginRequired parses the JWT from the auth cookie or bearer header.
// Guests are redirected to LoginPath?next=<original-path> rather than
// rejected outright.
func LoginRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, secret)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.RequestURI())
			c.Abort()
			return
		}
		c.Set(ctxUserID, claims["user_id"])
		c.Set(ctxUsername, claims["username"])
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, empty for guests.
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// CurrentUsername returns the authenticated user's username, empty for guests.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(ctxUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// Identify is LoginRequired's optional sibling: it attaches the identity
// when a valid token is present and lets guests through.
func Identify(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, secret); ok {
			c.Set(ctxUserID, claims["user_id"])
			c.Set(ctxUsername, claims["username"])
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	raw := ""
	if cookie, err := c.Cookie(authCookie); err == nil {
		raw = cookie
	} else if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		raw = strings.TrimPrefix(h, "Bearer ")
	}
	if raw == "" {
		return nil, false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
