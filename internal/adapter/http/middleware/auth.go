package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dhruvsolvzz/SHOPING-CART/configs"
)

const userIDKey = "auth_user_id"

type Auth struct {
	cfg configs.Config
}

func NewAuth(cfg configs.Config) *Auth {
	return &Auth{cfg: cfg}
}

// Required verifies the bearer token and stores the authenticated user id in
// the gin context. Every cart/order route sits behind this.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "authorization header required")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.cfg.Security.JWTSecret), nil
		},
			jwt.WithIssuer(a.cfg.Security.Issuer),
			jwt.WithAudience(a.cfg.Security.Audience),
			jwt.WithLeeway(30*time.Second), // small clock skew
		)
		if err != nil || !token.Valid {
			unauth(c, "invalid or expired token")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			unauth(c, "invalid or expired token")
			return
		}

		c.Set(userIDKey, sub)
		c.Next()
	}
}

// UserID returns the authenticated user id placed there by Required.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func unauth(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
