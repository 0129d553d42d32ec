package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/MrAmlya/unheard-echoes/config"
	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/policy"
)

// SessionCookie is the cookie the login and OAuth flows set. The
// middleware accepts either this cookie or a Bearer header.
const SessionCookie = "token"

const callerKey = "caller"

type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired rejects requests without a valid session token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := callerFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and
// stays silent otherwise. Used on public endpoints whose behavior
// branches on authentication (like toggling).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller, err := callerFromRequest(c); err == nil {
			c.Set(callerKey, caller)
		}
		c.Next()
	}
}

// RequireAdmin assumes AuthRequired ran earlier in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if caller.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CallerFrom returns the authenticated caller, or nil for anonymous
// requests.
func CallerFrom(c *gin.Context) *policy.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(*policy.Caller); ok {
			return caller
		}
	}
	return nil
}

func callerFromRequest(c *gin.Context) (*policy.Caller, error) {
	tokenString := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return nil, models.ErrorUnauthorized{Message: "bearer token required"}
		}
	} else if cookie, err := c.Cookie(SessionCookie); err == nil {
		tokenString = cookie
	}

	if tokenString == "" {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid token"}
	}
	if !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "token is not valid"}
	}

	return &policy.Caller{ID: claims.UserID, Role: models.UserRole(claims.Role)}, nil
}
