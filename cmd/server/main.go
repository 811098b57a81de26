package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/geo-prediction-service/config"
	"ulascansenturk/geo-prediction-service/internal/api/v1/handlers"
	"ulascansenturk/geo-prediction-service/internal/db/predictionlog"
	"ulascansenturk/geo-prediction-service/internal/logging"
	"ulascansenturk/geo-prediction-service/internal/model"
	"ulascansenturk/geo-prediction-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, logCloser := logging.New(conf, os.Stdout)
	defer logCloser.Close()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	sources := make([]model.Source, 0, len(conf.Models))
	for _, m := range conf.Models {
		sources = append(sources, model.Source{Name: m.Name, Path: m.Path})
	}
	registry := model.LoadRegistry(sources)

	var history predictionlog.Repository
	if conf.DBDriver != "" {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Str("driver", conf.DBDriver).Msg("failed to initialize database")
		}
		history = predictionlog.NewRepository(db)
	}

	predictionService := service.NewPredictionService(registry, history)

	handler := handlers.Chain(
		handlers.NewPredictionHandler(predictionService, conf.DefaultModel),
		handlers.RequestLogger,
		handlers.Recoverer,
		handlers.CORS(conf.CORSAllowedOrigins),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(config.DBPath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&predictionlog.PredictionLog{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
