package main

import (
	"context"
	"log"

	"eventpulse/config"
	"eventpulse/internal/clock"
	"eventpulse/internal/database"
	"eventpulse/internal/handler"
	"eventpulse/internal/notifier"
	"eventpulse/internal/repository"
	"eventpulse/internal/service"
	"eventpulse/monitoring"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	clk := clock.System()

	var eventRepo repository.EventRepository
	var userStore repository.UserStore

	switch cfg.Storage.Backend {
	case "memory":
		eventRepo = repository.NewMemoryEventRepository()
		userStore = repository.NewMemoryUserStore()
	case "postgres":
		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer pool.Close()

		pgRepo := repository.NewPostgresEventRepository(pool)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		eventRepo = pgRepo

		// 目前使用者 blob 仍放在 redis
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		userStore = repository.NewRedisUserStore(rdb)
	default: // redis
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer rdb.Close()

		eventRepo = repository.NewRedisEventRepository(rdb)
		userStore = repository.NewRedisUserStore(rdb)
	}

	emailNotifier := notifier.NewEmailNotifier()

	eventService := service.NewEventService(eventRepo, clk)
	attendanceService := service.NewAttendanceService(eventRepo, clk, emailNotifier)
	feedbackService := service.NewFeedbackService(eventRepo, clk)
	analyticsService := service.NewAnalyticsService(eventRepo)
	notificationService := service.NewNotificationService(eventRepo, emailNotifier)
	userService := service.NewUserService(userStore, clk)

	router := gin.Default()
	router.Use(monitoring.Middleware())
	monitoring.RegisterRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewAttendanceHandler(attendanceService).RegisterRoutes(router)
	handler.NewFeedbackHandler(feedbackService).RegisterRoutes(router)
	handler.NewAnalyticsHandler(analyticsService).RegisterRoutes(router)
	handler.NewNotificationHandler(notificationService).RegisterRoutes(router)
	handler.NewUserHandler(userService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
