package middleware

import (
	"net/http"
	"strings"

	"github.com/iamlouiesison/usefully-fin/pkg/context"
	"github.com/iamlouiesison/usefully-fin/pkg/jwt"
	"github.com/iamlouiesison/usefully-fin/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录。解析 Bearer token 并把 user_id 写入请求上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "登录已失效")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 可选登录。带合法 token 则识别访客身份，否则按匿名处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if ok {
			if claims, err := jwt.ParseToken(secret, "access", token); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
