package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebot/channel"
	"coursebot/config"
	"coursebot/database"
	adminRepoPkg "coursebot/database/repository/admin"
	courseRepoPkg "coursebot/database/repository/course"
	locationRepoPkg "coursebot/database/repository/location"
	trialRepoPkg "coursebot/database/repository/trial"
	userRepoPkg "coursebot/database/repository/user"
	"coursebot/handlers"
	"coursebot/middleware"
	"coursebot/routes"
	"coursebot/services/booking"
	"coursebot/services/catalog"
	"coursebot/services/dialog"
	"coursebot/services/notifier"
	"coursebot/services/recommend"
	"coursebot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDialogCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	courseRepo := courseRepoPkg.NewMongoCourseRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	trialRepo := trialRepoPkg.NewMongoTrialRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// outbound channel to the messaging gateway.
	gatewayChannel := channel.NewWebhookChannel(config.AppConfig.GatewayURL, logger)

	// services.
	matcher := &recommend.DefaultMatcher{
		CourseRepo: courseRepo,
		Logger:     logger,
	}

	queueClient := notifier.NewQueueClient()
	bookingNotifier := &notifier.AsynqNotifier{
		Client: queueClient,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Trials:    trialRepo,
		Courses:   courseRepo,
		Locations: locationRepo,
		Notifier:  bookingNotifier,
		Logger:    logger,
	}

	engine := &dialog.Engine{
		Sessions:  dialog.NewRedisSessionStore(utils.GetDialogCacheClient()),
		Courses:   courseRepo,
		Locations: locationRepo,
		Matcher:   matcher,
		Booking:   bookingService,
		Channel:   gatewayChannel,
		Logger:    logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		Courses:   courseRepo,
		Locations: locationRepo,
		Trials:    trialRepo,
		Users:     userRepo,
		Admins:    adminRepo,
		Logger:    logger,
	}
	if err := catalogService.EnsureSeedData(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed reference data: %v", err)
	}

	// Background worker delivering booking broadcasts to admins.
	notifier.InitNotifyWorker(adminRepo, gatewayChannel, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:   &handlers.ChatHandler{Engine: engine, Logger: logger},
		Auth:   &handlers.AuthHandler{Admins: adminRepo, Logger: logger},
		Admin:  &handlers.AdminHandler{Catalog: catalogService, Logger: logger},
		Public: &handlers.PublicHandler{Courses: courseRepo, Logger: logger},
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
