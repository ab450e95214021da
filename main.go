// File: enersense/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enersense/config"
	"enersense/database"
	calendarRepo "enersense/database/repository/calendar"
	deskRepo "enersense/database/repository/desk"
	"enersense/handlers"
	"enersense/middleware"
	"enersense/routes"
	"enersense/services/desk"
	ai "enersense/services/intelligence"
	"enersense/services/slotbook"
	"enersense/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newBookingRepo(logger *zap.SugaredLogger) calendarRepo.BookingRepository {
	switch config.AppConfig.StoreBackend {
	case "mongo":
		database.InitDB()
		return calendarRepo.NewMongoBookingRepo()
	case "memory":
		return calendarRepo.NewMemoryBookingRepo()
	default:
		repo, err := calendarRepo.NewCSVBookingRepo(config.AppConfig.DataDir)
		if err != nil {
			logger.Fatalf("main: failed to initialize calendar store: %v", err)
		}
		return repo
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := newBookingRepo(logger.Sugar())
	captureRepo, err := deskRepo.NewFileDeskRepo(config.AppConfig.DataDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize desk logs: %v", err)
	}

	// services.
	slotBookService := slotbook.NewDefaultSlotBook(bookingRepo)
	deskService := desk.NewDefaultDeskService(captureRepo)

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	chatService := ai.NewDefaultChatService(
		config.AppConfig.GeminiAPIKey,
		ctxStore,
		slotBookService,
		deskService,
	)

	chatHandler := handlers.NewChatHandler(chatService)
	consultationHandler := handlers.NewConsultationHandler(slotBookService, logger)
	deskHandler := handlers.NewDeskHandler(deskService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AIChatHandler: chatHandler.HandleChat,

		ScheduleConsultationHandler: consultationHandler.ScheduleConsultation,
		GetAvailableSlotsHandler:    consultationHandler.GetAvailableSlots,

		RecordLeadHandler:              deskHandler.RecordLead,
		RecordFeedbackHandler:          deskHandler.RecordFeedback,
		RecordMonitoringRequestHandler: deskHandler.RecordMonitoringRequest,
		RecordReportRequestHandler:     deskHandler.RecordReportRequest,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
