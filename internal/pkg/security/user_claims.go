package security

import (
	"InterVue/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "InterVue"

var (
	jwtSecret         = []byte("intervue-dev-secret")
	jwtExpirationTime = 7 * 24 * time.Hour
)

// UserClaims Token 中携带的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Init 从配置读取签名密钥与有效期
func Init(cfg config.JWTConfig) {
	if cfg.Secret != "" {
		jwtSecret = []byte(cfg.Secret)
	}
	if cfg.ExpireHours > 0 {
		jwtExpirationTime = time.Duration(cfg.ExpireHours) * time.Hour
	}
}

func ExpirationTime() time.Duration {
	return jwtExpirationTime
}
