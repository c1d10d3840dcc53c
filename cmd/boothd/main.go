package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/campuslab/printbooth/internal/config"
	"github.com/campuslab/printbooth/internal/handler"
	"github.com/campuslab/printbooth/internal/job"
	"github.com/campuslab/printbooth/internal/middleware"
	"github.com/campuslab/printbooth/internal/repo"
	"github.com/campuslab/printbooth/internal/schedule"
	"github.com/campuslab/printbooth/internal/service"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "boothd",
		Short: "print booth backend",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the booth server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("jwt secret is required (config jwt_secret or JWT_SECRET)")
			}
			return runServer(cfg)
		},
	}

	rootCmd.AddCommand(runCmd, seedCmd(), dbcheckCmd(), sizingCmd(), copyworkerCmd())

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	uri := repo.ResolveMongoURI(cfg.MongoURI)
	client, err := repo.Open(ctx, uri)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return client, client.Database(cfg.MongoDatabase), nil
}

func runServer(cfg *config.Config) error {
	if cfg.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, db, err := openDatabase(connectCtx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	pendingRepo, err := repo.NewPendingAccountRepository(connectCtx, db)
	if err != nil {
		return fmt.Errorf("init pending account repository: %w", err)
	}
	managerRepo, err := repo.NewBoothManagerRepository(connectCtx, db)
	if err != nil {
		return fmt.Errorf("init booth manager repository: %w", err)
	}

	mailSender := service.NewEmailSender(cfg.Mail)
	signupService := service.NewSignupService(pendingRepo, mailSender)
	authService := service.NewAuthService(managerRepo, []byte(cfg.JWTSecret), time.Hour*time.Duration(cfg.JWTTTLHours))
	boothService := service.NewBoothService(managerRepo)

	deps := handler.RouterDeps{
		Auth:      handler.NewAuthHandler(signupService, authService),
		Manager:   handler.NewManagerHandler(boothService),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewPendingCleanupJob(pendingRepo), "0 * * * *"); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(ctx).Info("http server listening",
		zap.Int("port", cfg.Port),
		zap.String("mode", cfg.Mode),
		zap.String("database", cfg.MongoDatabase),
	)

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
