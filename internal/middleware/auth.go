package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
)

const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextBarbershopID = "barbershopID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)

		// só barbeiros carregam barbearia no token
		if shopID, ok := claims["barbershopId"].(float64); ok {
			c.Set(ContextBarbershopID, uint(shopID))
		}

		c.Next()
	}
}

// PrincipalFromContext monta o Principal que os use cases esperam.
func PrincipalFromContext(c *gin.Context) domain.Principal {
	p := domain.Principal{
		UserID: c.MustGet(ContextUserID).(uint),
	}

	if role, ok := c.Get(ContextUserRole); ok {
		p.Role, _ = role.(string)
	}

	if shopID, ok := c.Get(ContextBarbershopID); ok {
		if id, ok := shopID.(uint); ok {
			p.BarbershopID = &id
		}
	}

	return p
}
