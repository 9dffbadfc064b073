package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	licensehdl "github.com/licensure/licensure/internal/api/handlers/license"
	mailloghdl "github.com/licensure/licensure/internal/api/handlers/maillog"
	personhdl "github.com/licensure/licensure/internal/api/handlers/person"
	smtphdl "github.com/licensure/licensure/internal/api/handlers/smtp"
	templatehdl "github.com/licensure/licensure/internal/api/handlers/template"
	"github.com/licensure/licensure/internal/api/router"
	"github.com/licensure/licensure/internal/api/server"
	"github.com/licensure/licensure/internal/config"
	"github.com/licensure/licensure/internal/notify"
	"github.com/licensure/licensure/internal/rabbitmq/handlers/notifyjob"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
	licenserepo "github.com/licensure/licensure/internal/repository/license"
	maillogrepo "github.com/licensure/licensure/internal/repository/maillog"
	personrepo "github.com/licensure/licensure/internal/repository/person"
	smtprepo "github.com/licensure/licensure/internal/repository/smtp"
	templaterepo "github.com/licensure/licensure/internal/repository/template"
	"github.com/licensure/licensure/internal/scheduler"
	"github.com/licensure/licensure/internal/secrets"
	licensesvc "github.com/licensure/licensure/internal/service/license"
	maillogsvc "github.com/licensure/licensure/internal/service/maillog"
	personsvc "github.com/licensure/licensure/internal/service/person"
	smtpsvc "github.com/licensure/licensure/internal/service/smtp"
	templatesvc "github.com/licensure/licensure/internal/service/template"
	"github.com/licensure/licensure/internal/worker"
)

func main() {
	if handleCLICommand(os.Args[1:]) {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotifyQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notify queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to set goose dialect")
	}
	if err := goose.Up(db.Master, migrationsDir); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	enc, err := secrets.NewEncryptor(cfg.Module.Password)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init credential encryptor")
	}

	licenseRepo := licenserepo.NewRepository(db)
	personRepo := personrepo.NewRepository(db)
	mailLogRepo := maillogrepo.NewRepository(db)
	templateRepo := templaterepo.NewRepository(db)
	settingsRepo := smtprepo.NewRepository(db)

	templateService := templatesvc.NewService(templateRepo, rdb, cfg.Retry)
	smtpService := smtpsvc.NewService(settingsRepo, enc, cfg.Mail, cfg.Module.Password)
	licenseService := licensesvc.NewService(licenseRepo, q)
	personService := personsvc.NewService(personRepo)
	mailLogService := maillogsvc.NewService(mailLogRepo)

	dispatcher := notify.NewDispatcher(licenseRepo, personRepo, templateService, mailLogRepo, smtpService)

	jobHandler := notifyjob.NewHandler(dispatcher, licenseRepo)
	notifier := worker.NewNotifier(q, jobHandler)
	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	sched := scheduler.New(licenseRepo, q, cfg.Scheduler.Hour, cfg.Scheduler.Minute)
	go sched.Run(ctx, cfg.Retry)

	licenseHandler := licensehdl.NewHandler(licenseService, dispatcher, val, cfg)
	personHandler := personhdl.NewHandler(personService, val)
	mailLogHandler := mailloghdl.NewHandler(mailLogService)
	templateHandler := templatehdl.NewHandler(templateService, val)
	smtpHandler := smtphdl.NewHandler(smtpService, val)

	r := router.New(licenseHandler, personHandler, mailLogHandler, templateHandler, smtpHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
