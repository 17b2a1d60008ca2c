package middleware

import (
	"strings"

	"timewise_backend/internal/config"
	"timewise_backend/internal/model"
	"timewise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige un token bearer válido y deja las claims en el
// contexto. Cualquier token ausente, malformado o vencido responde 401 sin
// distinguir la causa.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// AdminMiddleware permite el paso solo a usuarios con rol administrador.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.RoleID != model.RoleAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
