package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/vivacar/internal/config"
	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	"github.com/BruksfildServices01/vivacar/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextActor    = "actor"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		userID, ok := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		if !ok || userID <= 0 || !access.Role(role).Valid() {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		actor := access.Actor{ID: uint(userID), Role: access.Role(role)}

		c.Set(ContextUserID, actor.ID)
		c.Set(ContextUserRole, role)
		c.Set(ContextActor, actor)

		c.Next()
	}
}

// RequireRole barra o grupo inteiro antes de chegar ao handler. Os use
// cases checam o papel de novo.
func RequireRole(role access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.Require(ActorFrom(c), role); err != nil {
			httperr.Respond(c, err, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom devolve o ator autenticado ou o zero value (que nada pode).
func ActorFrom(c *gin.Context) access.Actor {
	v, ok := c.Get(ContextActor)
	if !ok {
		return access.Actor{}
	}
	actor, _ := v.(access.Actor)
	return actor
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Sessão inválida. Faça login novamente.")
	c.Abort()
}
