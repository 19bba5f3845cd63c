package wire

import (
	"InterVue/internal/api"
	"InterVue/internal/api/config"
	"InterVue/internal/api/handler"
	"InterVue/internal/api/middleware"
	"InterVue/internal/job"
	"InterVue/internal/pkg/cron"
	"InterVue/internal/pkg/kafka"
	"InterVue/internal/pkg/llm"
	"InterVue/internal/pkg/minio"
	"InterVue/internal/pkg/mongo"
	"InterVue/internal/pkg/redis"
	"InterVue/internal/repository"
	"InterVue/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
	Producer     *kafka.Producer
}

// Close 释放生产者连接
func (a *ApplicationContainer) Close() {
	if a.Producer != nil {
		if err := a.Producer.Close(); err != nil {
			log.Error("Failed to close kafka producer", "err", err)
		}
	}
}

func BuildApplication(db *gorm.DB, mongoDatabase *mongoDB.Database, oracle llm.Oracle, cfg *config.Config) (*ApplicationContainer, error) {
	app := &ApplicationContainer{DB: db}

	// repository
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	streakRepo := repository.NewStreakRepo(db)
	badgeRepo := repository.NewBadgeRepo(db)
	rewardRepo := repository.NewRewardRepo(db)
	interviewRepo := repository.NewInterviewRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	peerRepo := repository.NewPeerInterviewRepo(db)
	notificationRepo := mongo.NewNotificationRepo(mongoDatabase)
	transcriptRepo := mongo.NewTranscriptRepo(mongoDatabase)

	// Kafka 关闭时直接写通知
	var publisher service.EventPublisher
	if cfg.Kafka.Enable {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		app.Producer = producer
		publisher = producer

		app.KafkaManager, err = kafka.NewConsumerManager(cfg.Kafka, notificationRepo)
		if err != nil {
			app.Close()
			return nil, err
		}
	} else {
		publisher = kafka.NewInlinePublisher(notificationRepo)
	}

	cache := redis.NewStore()
	store := minio.NewStore()

	// service
	tokenService := service.NewTokenService(tokenRepo)
	streakService := service.NewStreakService(streakRepo)
	badgeService := service.NewBadgeService(badgeRepo, tokenRepo, streakRepo, interviewRepo, publisher)
	leaderboardService := service.NewLeaderboardService(tokenRepo, cache, cfg.Gamification)
	rewardService := service.NewRewardService(rewardRepo, tokenRepo, streakRepo, badgeService, publisher, cfg.Gamification)
	userService := service.NewUserService(userRepo, tokenService, streakService, badgeService, cache)
	mediaService := service.NewMediaService(userRepo, store)
	interviewService := service.NewInterviewService(interviewRepo, oracle)
	feedbackService := service.NewFeedbackService(interviewRepo, feedbackRepo, transcriptRepo, rewardService, oracle)
	quizService := service.NewQuizService(oracle, cache, rewardService)
	peerService := service.NewPeerInterviewService(peerRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := &api.HandlersGroup{
		GamificationHandler:  handler.NewGamificationHandler(tokenService, streakService, badgeService, leaderboardService, rewardService),
		AuthHandler:          handler.NewAuthHandler(userService, cfg.JWT),
		UserHandler:          handler.NewUserHandler(userService, mediaService),
		InterviewHandler:     handler.NewInterviewHandler(interviewService, feedbackService),
		QuizHandler:          handler.NewQuizHandler(quizService),
		PeerInterviewHandler: handler.NewPeerInterviewHandler(peerService),
		NotificationHandler:  handler.NewNotificationHandler(notificationService),

		Blacklist:      cache,
		CookieName:     cfg.JWT.CookieName,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Limiter:        middleware.NewIPRateLimiter(cfg.RateLimit.PerMinute),
	}
	app.Router = api.SetupRouter(handlers)

	// 定时任务
	app.CronMgr = cron.NewCronManager(
		job.NewBadgeReconcileJob(tokenRepo, badgeService, cache),
		job.NewLeaderboardWarmJob(leaderboardService, cache),
	)

	return app, nil
}
