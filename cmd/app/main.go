package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"visadesk/cmd"
	httpin "visadesk/internal/adapters/in/http"
	"visadesk/internal/adapters/out/filestore"
	"visadesk/internal/adapters/out/mail"
	"visadesk/internal/adapters/out/metrics"
	pgadapter "visadesk/internal/adapters/out/postgres"
	"visadesk/internal/adapters/out/redis/sessionstore"
	"visadesk/internal/alerts"
	"visadesk/internal/core/ports"
	"visadesk/internal/jobs"
	"visadesk/internal/pkg/clock"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := newLogger(configs)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)
	redisClient := mustConnectRedis(ctx, configs)
	defer redisClient.Close()

	sessions, err := sessionstore.New(redisClient, []byte(configs.SessionSecret))
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	sessions.MaxAge(configs.SessionMaxAge)
	sessions.Options.Secure = configs.IsProduction()

	mailer := mustCreateMailer(ctx, configs)
	recorder := metrics.NewRecorder()
	clk := clock.NewSystem(configs.ReconciliationLocation)

	supervisor := alerts.NewSupervisor(mailer, configs.AlertEmail, clk, logger, alerts.WithMetrics(recorder))
	supervisorCtx, stopSupervisor := context.WithCancel(context.Background())
	var supervisorDone sync.WaitGroup
	supervisorDone.Add(1)
	go func() {
		defer supervisorDone.Done()
		supervisor.Run(supervisorCtx)
	}()

	maxUpload, err := configs.UploadMaxBytes()
	if err != nil {
		log.Fatalf("upload size: %v", err)
	}
	storage, err := filestore.NewLocalStorage(configs.UploadDir, maxUpload)
	if err != nil {
		log.Fatalf("upload storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, storage, clk, logger)

	reconciliation := app.CreateStatusReconciliationJob(recorder)
	jobManager := jobs.NewJobManager(configs.ReconciliationLocation, supervisor, logger, reconciliation)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(reconciliation), sessions, configs.SessionName, logger)
	e := httpin.NewRouter(server, httpin.RouterConfig{
		BodyLimit:      configs.UploadMaxSize,
		Metrics:        recorder,
		MetricsHandler: recorder.Handler(),
		Reporter:       supervisor,
		Logger:         logger,
	})

	go func() {
		logger.Info("HTTP server listening", "addr", configs.HTTPAddr(), "env", configs.AppEnv)
		if err := e.Start(configs.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	jobManager.StopAll()
	stopSupervisor()
	supervisorDone.Wait()

	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if configs.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	opts.Level = slog.LevelDebug
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	level := gormlogger.Warn
	if configs.IsProduction() {
		level = gormlogger.Error
	}
	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = pgadapter.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return gormDB
}

func mustConnectRedis(ctx context.Context, configs cmd.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", configs.RedisAddr, err)
	}
	return client
}

func mustCreateMailer(ctx context.Context, configs cmd.Config) ports.Mailer {
	if configs.MailProvider == cmd.MailProviderSES {
		m, err := mail.NewSESMailer(ctx, configs.AWSRegion, configs.MailFrom)
		if err != nil {
			log.Fatalf("failed to configure SES: %v", err)
		}
		return m
	}
	return mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUser,
		Password: configs.SMTPPassword,
		From:     configs.MailFrom,
	})
}
