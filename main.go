// File: schedly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"schedly/config"
	"schedly/handlers"
	"schedly/middleware"
	"schedly/routes"
	"schedly/services/agent"
	"schedly/services/booking"
	"schedly/services/calendar"
	"schedly/services/intelligence"
	"schedly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Conversation context store: Redis when reachable, in-memory otherwise.
	redisClient := utils.InitSessionCache()
	var ctxStore agent.ContextStore
	if redisClient != nil {
		ctxStore = agent.NewRedisContextStore(redisClient,
			time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute)
	} else {
		ctxStore = agent.NewMemoryContextStore()
	}
	utils.StartHealthMonitor(redisClient)

	// Calendar backend: live Google Calendar, or the in-memory fake when the
	// service-account credentials are unavailable.
	backend, backendMode := calendar.NewBackend(context.Background(),
		config.AppConfig.GoogleCredentialsFile, config.AppConfig.CalendarID, logger)
	utils.SetBackendMode(backendMode)

	schedulingEngine := &booking.DefaultSchedulingEngine{
		Backend:           backend,
		BusinessHoursOnly: config.AppConfig.BusinessHoursOnly,
	}

	// Intent extraction: Gemini when an API key is configured, the keyword
	// fallback otherwise.
	var extractor intelligence.Extractor
	if config.AppConfig.GeminiAPIKey != "" {
		extractor = intelligence.NewGeminiExtractor(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		logger.Info("Using Gemini intent extractor")
	} else {
		extractor = &intelligence.KeywordExtractor{}
		logger.Warn("GEMINI_API_KEY not set, using keyword intent extractor")
	}

	agentService := &agent.DefaultAgentService{
		Extractor: extractor,
		Backend:   backend,
		Engine:    schedulingEngine,
	}

	agentHandler := handlers.NewAgentHandler(agentService, ctxStore)
	calendarHandler := handlers.NewCalendarHandler(backend, schedulingEngine)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:              agentHandler.ChatHandler,
		ResetConversationHandler: agentHandler.ResetConversationHandler,
		ListEventsHandler:        calendarHandler.ListEventsHandler,
		SuggestTimesHandler:      calendarHandler.SuggestTimesHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

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
