package api

import (
	"InterVue/internal/api/middleware"
	"InterVue/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(group.AllowedOrigins))
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(group.Blacklist, group.CookieName)
	limit := middleware.RateLimitMiddleware(group.Limiter)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
		apiGroup.GET("/me", auth, group.AuthHandler.Me)

		gamification := apiGroup.Group("/gamification")
		{
			gamification.GET("/tokens", group.GamificationHandler.GetTokens)
			gamification.POST("/tokens", group.GamificationHandler.AwardTokens)
			gamification.GET("/streaks", group.GamificationHandler.GetStreak)
			gamification.POST("/streaks", group.GamificationHandler.UpdateStreak)
			gamification.GET("/badges", group.GamificationHandler.GetBadges)
			gamification.POST("/badges", group.GamificationHandler.GrantBadge)
			gamification.GET("/badges/catalog", group.GamificationHandler.GetCatalog)
			gamification.GET("/leaderboard", group.GamificationHandler.GetLeaderboard)
			gamification.POST("/rewards", group.GamificationHandler.TriggerReward)
		}

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/sign-up", group.AuthHandler.SignUp)
			authGroup.POST("/sign-in", group.AuthHandler.SignIn)
			authGroup.POST("/sign-out", auth, group.AuthHandler.SignOut)
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(auth)
		{
			userGroup.GET("/profile", group.UserHandler.GetProfile)
			userGroup.POST("/avatar", group.UserHandler.UploadAvatar)
			userGroup.POST("/resume", group.UserHandler.UploadResume)
		}

		vapi := apiGroup.Group("/vapi")
		{
			vapi.GET("/generate", group.InterviewHandler.GenerateHealth)
			vapi.POST("/generate", limit, group.InterviewHandler.Generate)
		}

		interviews := apiGroup.Group("/interviews")
		{
			interviews.GET("", group.InterviewHandler.ListByUser)
			interviews.GET("/latest", group.InterviewHandler.ListLatest)
			interviews.GET("/:id", group.InterviewHandler.GetInterview)
			interviews.POST("/:id/feedback", auth, limit, group.InterviewHandler.CreateFeedback)
			interviews.GET("/:id/feedback", auth, group.InterviewHandler.GetFeedback)
		}

		quiz := apiGroup.Group("/quiz")
		{
			quiz.POST("/generate", limit, group.QuizHandler.Generate)
			quiz.POST("/complete", auth, group.QuizHandler.Complete)
		}

		peer := apiGroup.Group("/peer-interview")
		{
			peer.POST("/session", group.PeerInterviewHandler.CreateSession)
			peer.GET("/session", group.PeerInterviewHandler.ListSessions)
			peer.POST("/question", group.PeerInterviewHandler.AddQuestion)
			peer.GET("/question", group.PeerInterviewHandler.ListQuestions)
			peer.POST("/feedback", group.PeerInterviewHandler.AddFeedback)
			peer.GET("/feedback", group.PeerInterviewHandler.ListFeedbacks)
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(auth)
		{
			notifications.GET("", group.NotificationHandler.GetNotificationList)
			notifications.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notifications.POST("/read", group.NotificationHandler.MarkRead)
			notifications.POST("/read/all", group.NotificationHandler.MarkAllRead)
		}
	}

	return r
}
