package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/config"
	"github.com/piresc/titipkan/internal/pkg/database"
	"github.com/piresc/titipkan/internal/pkg/health"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/middleware"
	natspkg "github.com/piresc/titipkan/internal/pkg/nats"
	"github.com/piresc/titipkan/internal/pkg/server"
	"go.uber.org/zap"

	matchGateway "github.com/piresc/titipkan/services/match/gateway"
	matchHandlerPkg "github.com/piresc/titipkan/services/match/handler"
	matchHTTP "github.com/piresc/titipkan/services/match/handler/http"
	matchNATS "github.com/piresc/titipkan/services/match/handler/nats"
	matchRepository "github.com/piresc/titipkan/services/match/repository"
	matchUsecase "github.com/piresc/titipkan/services/match/usecase"
	parcelGateway "github.com/piresc/titipkan/services/parcels/gateway"
	parcelHandlerPkg "github.com/piresc/titipkan/services/parcels/handler"
	parcelHTTP "github.com/piresc/titipkan/services/parcels/handler/http"
	parcelRepository "github.com/piresc/titipkan/services/parcels/repository"
	parcelUsecase "github.com/piresc/titipkan/services/parcels/usecase"
	reviewHandlerPkg "github.com/piresc/titipkan/services/reviews/handler"
	reviewHTTP "github.com/piresc/titipkan/services/reviews/handler/http"
	reviewRepository "github.com/piresc/titipkan/services/reviews/repository"
	reviewUsecase "github.com/piresc/titipkan/services/reviews/usecase"
	sessionHandlerPkg "github.com/piresc/titipkan/services/session/handler"
	sessionHTTP "github.com/piresc/titipkan/services/session/handler/http"
	sessionNATS "github.com/piresc/titipkan/services/session/handler/nats"
	sessionUsecase "github.com/piresc/titipkan/services/session/usecase"
	tripGateway "github.com/piresc/titipkan/services/trips/gateway"
	tripHandlerPkg "github.com/piresc/titipkan/services/trips/handler"
	tripHTTP "github.com/piresc/titipkan/services/trips/handler/http"
	tripRepository "github.com/piresc/titipkan/services/trips/repository"
	tripUsecase "github.com/piresc/titipkan/services/trips/usecase"
	userHandlerPkg "github.com/piresc/titipkan/services/users/handler"
	userHTTP "github.com/piresc/titipkan/services/users/handler/http"
	userRepository "github.com/piresc/titipkan/services/users/repository"
	userUsecase "github.com/piresc/titipkan/services/users/usecase"
)

func main() {
	appName := "titipkan-api"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/api.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	userRepo := userRepository.NewUserRepo(configs, db)
	parcelRepo := parcelRepository.NewParcelRepo(configs, db, redisClient)
	tripRepo := tripRepository.NewTripRepo(configs, db)
	matchRepo := matchRepository.NewMatchRepo(configs, db, redisClient)
	reviewRepo := reviewRepository.NewReviewRepo(configs, db)

	// Gateways
	parcelGW := parcelGateway.NewParcelGW(natsClient)
	tripGW := tripGateway.NewTripGW(natsClient)
	matchGW := matchGateway.NewMatchGW(natsClient)

	// Usecases
	userUC := userUsecase.NewUserUC(userRepo, configs)
	parcelUC := parcelUsecase.NewParcelUC(parcelRepo, parcelGW, configs)
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, tripGW)
	matchUC := matchUsecase.NewMatchUC(configs, matchRepo, matchGW)
	reviewUC := reviewUsecase.NewReviewUC(configs, reviewRepo)

	// Session manager sits on top of the parcel and trip usecases
	sessionManager := sessionUsecase.NewManager(configs, parcelUC, tripUC, redisClient)

	// Handlers
	authHandler := userHTTP.NewAuthHandler(userUC, sessionManager)
	userHandler := userHTTP.NewUserHandler(userUC, sessionManager)
	usersHandler := userHandlerPkg.NewHandler(userHandler, authHandler, configs)

	parcelHandler := parcelHTTP.NewParcelHandler(parcelUC, sessionManager)
	parcelsHandler := parcelHandlerPkg.NewHandler(parcelHandler, configs)

	tripHandler := tripHTTP.NewTripHandler(tripUC)
	tripsHandler := tripHandlerPkg.NewHandler(tripHandler, configs)

	matchHTTPHandler := matchHTTP.NewMatchHandler(matchUC)
	matchNATSHandler := matchNATS.NewHandler(matchUC, natsClient)
	matchHandler := matchHandlerPkg.NewHandler(matchHTTPHandler, matchNATSHandler, configs)

	reviewHandler := reviewHTTP.NewReviewHandler(reviewUC)
	reviewsHandler := reviewHandlerPkg.NewHandler(reviewHandler, configs)

	sessionHTTPHandler := sessionHTTP.NewSessionHandler(sessionManager)
	sessionNATSHandler := sessionNATS.NewHandler(sessionManager, natsClient)
	sessionHandler := sessionHandlerPkg.NewHandler(sessionHTTPHandler, sessionNATSHandler, configs)

	// Event subscriptions
	if err := matchHandler.InitSubscribers(); err != nil {
		zapLogger.Fatal("Failed to initialize match subscribers", zap.Error(err))
	}
	if err := sessionHandler.InitSubscribers(); err != nil {
		zapLogger.Fatal("Failed to initialize session subscribers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	usersHandler.RegisterRoutes(e)
	parcelsHandler.RegisterRoutes(e)
	tripsHandler.RegisterRoutes(e)
	matchHandler.RegisterRoutes(e)
	reviewsHandler.RegisterRoutes(e)
	sessionHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
