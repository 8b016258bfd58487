package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	supa "github.com/supabase-community/supabase-go"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/models"
)

// TokenTTL is the lifetime of an issued login token.
const TokenTTL = time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken signs a bearer token binding the given email, expiring after
// TokenTTL. Issued on every successful login upsert.
func NewToken(email, secret string) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AuthMiddleware is the first stage of the gate: the request must carry a
// well-formed Authorization header (401 otherwise), and the token must
// verify against the server secret and be unexpired (403 otherwise). On
// success the bound email is placed in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Authorization required",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Invalid token claims",
			})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)

		c.Next()
	}
}

// AdminMiddleware is the second stage, applied after AuthMiddleware on
// admin-gated routes. The token's email must resolve to a user record with
// role "admin". A missing record cannot prove the role, so it fails the
// same way a non-admin does.
func AdminMiddleware(supabase *supa.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Forbidden access",
			})
			c.Abort()
			return
		}

		var users []models.User
		data, _, err := supabase.From("users").
			Select("email, role", "", false).
			Eq("email", email.(string)).
			Execute()
		if err == nil {
			err = json.Unmarshal(data, &users)
		}

		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Response{
				Success: false,
				Error:   "Failed to verify role",
			})
			c.Abort()
			return
		}

		if len(users) == 0 || !users[0].IsAdmin() {
			c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Forbidden access",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
