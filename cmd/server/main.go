package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/api"
	"github.com/saathiconnect/saathi-backend/internal/config"
	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/db"
	"github.com/saathiconnect/saathi-backend/internal/geocode"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
)

func main() {
	// Load .env file. In production, environment variables should be set directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth, Storage) initialized")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	photoBucket := db.GetPhotoBucket()
	if firestoreClient == nil || firebaseAuthClient == nil || photoBucket == nil {
		zapLogger.Fatal("Firebase clients are nil after initialization")
	}

	// Redis backs the geocode cache only; the app runs without it.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     appConfig.RedisAddress,
		Password: appConfig.RedisPassword,
		DB:       appConfig.RedisDB,
	})
	if err := redisClient.Ping(initCtx).Err(); err != nil {
		zapLogger.Warn("Redis unavailable, geocode caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Repositories
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	workerRepo := db.NewFirestoreWorkerRepository(firestoreClient)
	jobRepo := db.NewFirestoreJobRepository(firestoreClient)
	appRepo := db.NewFirestoreApplicationRepository(firestoreClient)
	inviteRepo := db.NewFirestoreInviteRepository(firestoreClient)
	reviewRepo := db.NewFirestoreReviewRepository(firestoreClient)
	intentRepo := db.NewFirestoreIntentRepository(firestoreClient)
	photoStore := db.NewGCSPhotoStore(photoBucket, appConfig.StorageBucket)

	// Services
	identity := core.NewFirebaseIdentity(firebaseAuthClient)
	sessionService := core.NewSessionService(identity, userRepo, workerRepo, zapLogger)
	authService := core.NewAuthService(identity, appConfig.FirebaseWebAPIKey, zapLogger)
	profileService := core.NewProfileService(userRepo, workerRepo, photoStore)
	searchService := core.NewSearchService(userRepo, workerRepo, zapLogger)
	jobService := core.NewJobService(jobRepo)
	applicationService := core.NewApplicationService(appRepo, jobRepo)
	inviteService := core.NewInviteService(inviteRepo, userRepo)
	completionService := core.NewCompletionService(intentRepo, inviteRepo, jobRepo, appRepo, reviewRepo, zapLogger)
	reviewService := core.NewReviewService(reviewRepo)
	geocoder := geocode.NewClient(appConfig.NominatimBaseURL, redisClient, zapLogger)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	guards := middleware.NewGuards(identity, sessionService)
	api.SetupRoutes(router, guards, api.Services{
		Auth:       authService,
		Profile:    profileService,
		Search:     searchService,
		Job:        jobService,
		Apps:       applicationService,
		Invite:     inviteService,
		Completion: completionService,
		Review:     reviewService,
		Geocoder:   geocoder,
	}, zapLogger)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
