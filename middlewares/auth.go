package middlewares

import (
	"fmt"
	"strings"

	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/ahmedxgouda/LittleLemon/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware checks the bearer token and resolves the caller's role set
// from the group tables, once per request.
func AuthMiddleware(secret string, roleSvc *services.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		roles, err := roleSvc.RolesOf(claims.UserID)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("roles", roles)
		c.Next()
	}
}

// RequireManager gates manager-only route groups.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentRoles(c).Manager {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
