package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jiyoon/drambook/internal/analysis"
	"github.com/jiyoon/drambook/internal/api"
	"github.com/jiyoon/drambook/internal/auth"
	"github.com/jiyoon/drambook/internal/config"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/nlp"
	"github.com/jiyoon/drambook/internal/repository"
	"github.com/jiyoon/drambook/internal/vocab"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.LoadFromEnv())
	logger.SetDefault(appLogger)
	defer logger.Sync()

	db, err := repository.InitDB(&cfg.Database, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	recordRepo := repository.NewRecordRepository(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Whitelist vocabulary can live on local disk or in an S3 bucket
	vocabSource, err := vocab.NewSource(&vocab.FactoryConfig{
		Type: vocab.SourceType(cfg.Whitelist.Source),
		Path: cfg.Whitelist.Path,
		S3: &vocab.S3Config{
			Endpoint:  cfg.Whitelist.S3.Endpoint,
			Region:    cfg.Whitelist.S3.Region,
			AccessKey: cfg.Whitelist.S3.AccessKey,
			SecretKey: cfg.Whitelist.S3.SecretKey,
			UseSSL:    cfg.Whitelist.S3.UseSSL,
			Bucket:    cfg.Whitelist.S3.Bucket,
			Key:       cfg.Whitelist.S3.Key,
		},
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize whitelist source")
	}

	whitelist := nlp.NewWhitelist(vocabSource, appLogger)
	tokenizers := nlp.NewKiwiProvider(nlp.KiwiConfig{
		BaseURL: cfg.Tokenizer.BaseURL,
		Timeout: time.Duration(cfg.Tokenizer.TimeoutSeconds) * time.Second,
	}, appLogger)
	freq := nlp.NewFrequencyAnalyzer(tokenizers, whitelist, appLogger)

	analyzer := analysis.NewService(recordRepo, freq, appLogger, &analysis.Config{
		CacheTTL:     time.Duration(cfg.Analysis.CacheTTLMinutes) * time.Minute,
		RecentWindow: cfg.Analysis.RecentWindow,
	})

	kakao := auth.NewKakaoClient(auth.KakaoConfig{
		ClientID:     cfg.Kakao.ClientID,
		ClientSecret: cfg.Kakao.ClientSecret,
		RedirectURL:  cfg.Kakao.RedirectURL,
	})
	if !kakao.Enabled() {
		appLogger.Warn("Kakao OAuth not configured, login endpoints will refuse requests")
	}
	sessions := auth.NewSessionStore(time.Duration(cfg.Session.TTLHours) * time.Hour)

	router := api.SetupRouter(&api.Deps{
		Config:   cfg,
		Analyzer: analyzer,
		Kakao:    kakao,
		Sessions: sessions,
		Users:    userRepo,
		Records:  recordRepo,
		Products: productRepo,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
