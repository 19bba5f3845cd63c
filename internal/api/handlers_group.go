package api

import (
	"InterVue/internal/api/handler"
	"InterVue/internal/api/middleware"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例与路由依赖
type HandlersGroup struct {
	GamificationHandler  *handler.GamificationHandler
	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	InterviewHandler     *handler.InterviewHandler
	QuizHandler          *handler.QuizHandler
	PeerInterviewHandler *handler.PeerInterviewHandler
	NotificationHandler  *handler.NotificationHandler

	Blacklist      middleware.Blacklist
	CookieName     string
	AllowedOrigins []string
	Limiter        *middleware.IPRateLimiter
}
