package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"admindash/internal/adapter/api"
	"admindash/internal/adapter/api/handler"
	"admindash/internal/adapter/api/middleware"
	"admindash/internal/adapter/api/router"
	"admindash/internal/adapter/repository"
	"admindash/internal/infrastructure/firebase"
	"admindash/internal/infrastructure/scheduler"
	"admindash/internal/usecase"
	"admindash/pkg/config"
	"admindash/pkg/logger"
	"admindash/pkg/response"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepTimeout    = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger.Configure(cfg.IsDevelopment())
	defer logger.Sync()

	ctx := context.Background()

	opt, err := credentials(cfg)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		logger.Error("Failed to initialize Firebase: %v", err)
		os.Exit(1)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Error("Failed to initialize Firebase Auth: %v", err)
		os.Exit(1)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to create Firestore client: %v", err)
		os.Exit(1)
	}
	defer firestoreClient.Close()

	e := newServer(cfg, firebase.NewFirebaseAuthClient(authClient), firestoreClient)

	sched, err := startSweep(cfg, firestoreClient)
	if err != nil {
		logger.Error("Invalid RECYCLE_SWEEP_SCHEDULE: %v", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("Starting server on port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

// credentials prefers inline service account JSON (production) and falls
// back to a key file on disk (local development).
func credentials(cfg *config.Config) (option.ClientOption, error) {
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)), nil
	}

	if _, err := os.Stat(cfg.ServiceAccountPath); err != nil {
		return nil, errors.New("service account file does not exist: " + cfg.ServiceAccountPath)
	}
	logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
	return option.WithCredentialsFile(cfg.ServiceAccountPath), nil
}

func newServer(cfg *config.Config, identity *firebase.FirebaseAuthClient, client *firestore.Client) *echo.Echo {
	adminRepo := repository.NewFirestoreAdminRepository(client)
	activityRepo := repository.NewFirestoreActivityRepository(client)
	feedbackRepo := repository.NewFirestoreFeedbackRepository(client)
	recycleRepo := repository.NewFirestoreRecycleBinRepository(client)
	progressRepo := repository.NewFirestoreProgressRepository(client)
	nameChangeRepo := repository.NewFirestoreDisplayNameChangeRepository(client)
	collectionLister := repository.NewFirestoreCollectionLister(client)

	activityUseCase := usecase.NewActivityUseCase(activityRepo)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackRepo, recycleRepo, retention(cfg))
	userUseCase := usecase.NewUserUseCase(identity, progressRepo, nameChangeRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(identity, progressRepo)
	systemUseCase := usecase.NewSystemUseCase(collectionLister)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	guards := router.Guards{
		Auth:  middleware.NewAuthMiddleware(identity),
		Admin: middleware.NewAdminMiddleware(adminRepo),
	}
	if cfg.FeedbackRateLimitPerMinute > 0 {
		guards.FeedbackLimiter = middleware.NewRateLimiter(cfg.FeedbackRateLimitPerMinute, time.Minute)
	}

	h := handler.New(activityUseCase, feedbackUseCase, userUseCase, analyticsUseCase, systemUseCase)
	router.Setup(e, h, guards)

	return e
}

// startSweep schedules the recycle bin purge when a schedule is configured.
// Reads of the recycle bin purge expired entries either way.
func startSweep(cfg *config.Config, client *firestore.Client) (*scheduler.Scheduler, error) {
	if cfg.RecycleSweepSchedule == "" {
		return nil, nil
	}

	feedbackUseCase := usecase.NewFeedbackUseCase(
		repository.NewFirestoreFeedbackRepository(client),
		repository.NewFirestoreRecycleBinRepository(client),
		retention(cfg),
	)

	sched := scheduler.NewScheduler(sweepTimeout)
	if err := sched.Add("recycle-bin-sweep", cfg.RecycleSweepSchedule, feedbackUseCase.PurgeExpired); err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}

func retention(cfg *config.Config) time.Duration {
	return time.Duration(cfg.RecycleRetentionDays) * 24 * time.Hour
}
