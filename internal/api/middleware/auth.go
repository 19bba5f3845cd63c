package middleware

import (
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/logger"
	"InterVue/internal/pkg/response"
	"InterVue/internal/pkg/security"
	"InterVue/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Blacklist 已注销的 token 签名
type Blacklist interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
// 优先读取 Authorization 头，其次读取 session cookie
func AuthMiddleware(blacklist Blacklist, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c, cookieName)
		if tokenString == "" {
			response.Error(c, service.ErrNotAuthenticated)
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Error(c, service.ErrNotAuthenticated)
			return
		}

		revoked, err := blacklist.Exists(c.Request.Context(), consts.TokenBlacklistKey+signature)
		if err != nil {
			response.Error(c, err)
			return
		}
		if revoked {
			response.Error(c, service.ErrNotAuthenticated)
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, service.ErrNotAuthenticated)
			return
		}

		c.Set(logger.UserIDKey, claims.UserID)
		newCtx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// BearerToken 取出请求携带的 token，没有返回空串
func BearerToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
