package middleware

import (
	"AppNotas/pkg/context"
	"AppNotas/pkg/response"
	"AppNotas/service"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const MsgTokenRequired = "Token de acceso requerido"

// Auth 解析 Bearer 令牌并回查用户，结果写入 gin.Context
func Auth(users service.IUserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, http.StatusUnauthorized, MsgTokenRequired)
			return
		}

		user, err := users.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			response.Render(c, err)
			return
		}

		context.SetUser(c, user.ID, user.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
