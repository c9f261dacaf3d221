package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fleetflow/internal/config"
)

var secret []byte

// Init sets the JWT signing key. The server calls this after config.MustLoad
// so a secret loaded from .env is the one tokens are signed with.
func Init(jwtSecret string) {
	secret = []byte(jwtSecret)
}

// signingKey resolves the key lazily so test binaries that never run
// config.MustLoad still get a consistent key.
func signingKey() []byte {
	if len(secret) == 0 {
		if val := os.Getenv("JWT_SECRET"); val != "" {
			secret = []byte(val)
		} else {
			secret = []byte("supersecret") // test fallback only; MustLoad refuses to start without the real one
		}
	}
	return secret
}

// GenerateToken signs a token carrying the caller's identity and resolved
// tenancy. organisationID is the canonical (manager row) organisation id.
func GenerateToken(userID uint, role, accessCode string, organisationID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId":          userID,
		"role":            role,
		"access_code":     accessCode,
		"organisation_id": organisationID,
		"exp":             time.Now().Add(config.TokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// RequireAuth ensures a valid JWT is present and stashes its claims in the
// gin context for controllers to read.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return signingKey(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set("user_id", claims["userId"])
		c.Set("role", claims["role"])
		c.Set("access_code", claims["access_code"])
		c.Set("organisation_id", claims["organisation_id"])

		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not in the
// allowed set. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = true
	}
	return func(c *gin.Context) {
		roleIfc, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		role, ok := roleIfc.(string)
		if !ok || !allowed[strings.ToLower(role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
