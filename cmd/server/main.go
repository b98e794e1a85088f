package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"internconnect/internal/ai"
	"internconnect/internal/config"
	apphttp "internconnect/internal/http"
	"internconnect/internal/service"
	"internconnect/internal/session"
	"internconnect/internal/storage"
	"internconnect/internal/store"
	"internconnect/internal/token"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.TokenSecret) == "" {
		logger.Fatalf("auth token secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := buildKV(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeKV()

	issuer := token.NewIssuer(cfg.Auth.TokenSecret)
	authService := service.NewAuthService(kv, issuer, cfg.Sim.Latency)
	listingService := service.NewListingService(kv, cfg.Sim.Latency)

	sessions := session.NewManager(kv)
	if err := sessions.Restore(ctx); err != nil {
		logger.Fatalf("restore session: %v", err)
	}

	generator := ai.NewGenerator(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, logger)

	logos, err := buildLogoStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup logo storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, listingService, sessions, generator, logos, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildKV(ctx context.Context, cfg config.Config, logger *logrus.Logger) (store.KV, func(), error) {
	switch cfg.Store.Backend {
	case "redis":
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("redis addr is required for the redis backend")
		}
		kv, err := store.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("using redis store at %s", cfg.Redis.Addr)
		return kv, func() { _ = kv.Close() }, nil
	case "sqlite":
		kv, err := store.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := kv.Init(ctx); err != nil {
			return nil, nil, err
		}
		logger.Infof("using sqlite store at %s", cfg.Database.Path)
		return kv, func() { _ = kv.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func buildLogoStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.LogoStore, error) {
	if cfg.Storage.Bucket == "" {
		logger.Info("logo storage disabled (no bucket configured)")
		return nil, nil
	}
	if cfg.Storage.PublicURL == "" {
		return nil, fmt.Errorf("storage public url is required when a bucket is configured")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s) for logos", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3LogoStore(client, cfg.Storage.Bucket, cfg.Storage.KeyPrefix, cfg.Storage.PublicURL), nil
}
