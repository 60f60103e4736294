package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/diwise/alarmer/internal/pkg/application"
	"github.com/diwise/alarmer/internal/pkg/application/alarms"
	"github.com/diwise/alarmer/internal/pkg/application/events"
	"github.com/diwise/alarmer/internal/pkg/application/provisioning"
	"github.com/diwise/alarmer/internal/pkg/application/retention"
	"github.com/diwise/alarmer/internal/pkg/application/webevents"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/controller"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/mail"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/auditlog"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/subscriptions"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/repositories/database/userinfo"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/router"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/internal/pkg/presentation/api"
	"github.com/diwise/alarmer/internal/pkg/presentation/api/auth"
	"github.com/diwise/alarmer/internal/pkg/presentation/triggers"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const serviceName string = "alarmer"

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var configPath, policiesPath string
	flag.StringVar(&configPath, "config", env.GetVariableOrDefault(logger, "ALARMER_CONFIG_FILE", "/opt/diwise/config/alarmer.yaml"), "configuration file")
	flag.StringVar(&policiesPath, "policies", env.GetVariableOrDefault(logger, "ALARMER_POLICIES_FILE", "/opt/diwise/config/authz.rego"), "authorization policies")
	flag.Parse()

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init tracing")
	}
	defer cleanup()

	cfg, err := loadConfiguration(logger, configPath)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to load configuration from %s", configPath)
	}

	logger = logger.With().Str("mode", string(cfg.Mode)).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	policies, err := os.Open(policiesPath)
	if err != nil {
		logger.Fatal().Err(err).Msgf("unable to open authorization policies from %s", policiesPath)
	}
	authz, err := auth.NewPolicyAuthorizer(ctx, policies)
	policies.Close()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare authorization policies")
	}

	ctrl, err := controller.New(ctx, controller.Config{
		URL:          cfg.Controller.URL,
		Target:       cfg.Controller.Target,
		TokenURL:     cfg.Controller.TokenURL,
		ClientID:     cfg.Controller.ClientID,
		ClientSecret: cfg.Controller.ClientSecret,
		APIKey:       cfg.Controller.APIKey,
		Timeout:      time.Duration(cfg.Controller.Timeout) * time.Second,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create controller client")
	}

	web := webevents.New()
	defer web.Shutdown()

	publisher := setupPublisher(ctx, logger, cfg, web)

	a, err := newApp(ctx, cfg, newConnector(logger), ctrl, setupMailer(ctx, logger, cfg), authz, publisher)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer a.close()

	if cfg.Primary() {
		cleaner := retention.New(ctx, a.log, cfg.CleanerInterval(), cfg.Retention())
		cleaner.Start()
		defer cleaner.Stop()

		if cfg.AMQP.URL != "" {
			consumer := triggers.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Queue, a.trigger)
			if err = consumer.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msg("failed to start trigger consumer")
			}
			defer consumer.Stop()
		}
	}

	tokenAuth := jwtauth.New("HS256", []byte(env.GetVariableOrDefault(logger, "ALARMER_JWT_SECRET", "")), nil)

	r := setupRouter(ctx, cfg, tokenAuth, a, authz, web)

	servePort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	controlPort := env.GetVariableOrDefault(logger, "CONTROL_PORT", "8000")

	servers := []*http.Server{
		{Addr: ":" + servePort, Handler: r},
		{Addr: ":" + controlPort, Handler: router.NewControl()},
	}

	for _, s := range servers {
		go func(s *http.Server) {
			logger.Info().Str("addr", s.Addr).Msg("starting to listen for connections")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msgf("failed to listen on %s", s.Addr)
			}
		}(s)
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, s := range servers {
		s.Shutdown(shutdownCtx)
	}
}

type app struct {
	db           *database.Manager
	log          auditlog.Log
	alarms       alarms.AlarmService
	provisioning provisioning.ProvisioningService
}

func newApp(ctx context.Context, cfg *application.Config, connect database.ConnectorFunc, ctrl controller.Client, mailer mail.Sender, authz application.Authorizer, publisher events.Publisher) (*app, error) {
	logger := logging.GetLoggerFromContext(ctx)

	db, err := database.NewManager(connect)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	subs, err := subscriptions.NewStore(db)
	if err != nil {
		return nil, err
	}

	auditLog, err := auditlog.New(db)
	if err != nil {
		return nil, err
	}

	contacts, err := userinfo.New(db)
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		contacts = userinfo.NewCached(contacts, rdb, time.Duration(cfg.Redis.TTL)*time.Second, logger)
	}

	return &app{
		db:  db,
		log: auditLog,
		alarms: alarms.New(
			alarms.Config{SystemName: cfg.SystemName, EmailField: cfg.UserInfoEmailField},
			ctrl, subs, auditLog, contacts, mailer, authz, publisher,
		),
		provisioning: provisioning.New(cfg.Controller.Callback, ctrl, subs, authz),
	}, nil
}

// trigger dispatches a trigger received from the queue within its own
// connection scope
func (a *app) trigger(ctx context.Context, alarmID string, level int) error {
	ctx, release := a.db.Scope(ctx)
	defer release()

	return a.alarms.Trigger(ctx, alarmID, level)
}

func (a *app) close() {
	a.db.Close()
}

func setupRouter(ctx context.Context, cfg *application.Config, tokenAuth *jwtauth.JWTAuth, a *app, authz application.Authorizer, web http.Handler) *chi.Mux {
	r := router.New(serviceName)
	return api.RegisterHandlers(ctx, r, tokenAuth, a.db, a.alarms, a.provisioning, api.Options{
		Primary: cfg.Primary(),
		Events:  web,
		Authz:   authz,
	})
}

func newConnector(logger zerolog.Logger) database.ConnectorFunc {
	dbCfg := database.LoadConfigFromEnv(logger)
	if dbCfg.Host == "" {
		logger.Warn().Msg("POSTGRES_HOST is not set, using an in-memory database")
		return database.NewSQLiteConnector(logger)
	}
	return database.NewPostgreSQLConnector(logger, dbCfg)
}

func setupMailer(ctx context.Context, logger zerolog.Logger, cfg *application.Config) mail.Sender {
	registry := mail.NewRegistry(cfg.Mail.From, logger)

	registry.Register(mail.NewSMTPProvider(mail.SMTPConfig{
		Host:     cfg.Mail.SMTP.Host,
		Port:     cfg.Mail.SMTP.Port,
		User:     cfg.Mail.SMTP.User,
		Password: cfg.Mail.SMTP.Password,
	}))
	registry.Register(mail.NewSESProvider(ctx, cfg.Mail.SESRegion, logger))
	registry.Register(mail.NewResendProvider(cfg.Mail.ResendAPIKey))

	if err := registry.SetPrimary(cfg.Mail.Provider); err != nil {
		logger.Fatal().Err(err).Msg("invalid mail provider")
	}

	if err := registry.SetFallback(cfg.Mail.Fallback...); err != nil {
		logger.Fatal().Err(err).Msg("invalid mail fallback providers")
	}

	return registry
}

func setupPublisher(ctx context.Context, logger zerolog.Logger, cfg *application.Config, web events.Publisher) events.Publisher {
	publishers := []events.Publisher{web}

	if env.GetVariableOrDefault(logger, "RABBITMQ_HOST", "") != "" {
		messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init messenger")
		}
		publishers = append(publishers, events.NewTopicPublisher(messenger))
	}

	webhooks, err := events.NewWebhookPublisher(serviceName, cfg.Events)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create webhook publisher")
	}
	publishers = append(publishers, webhooks)

	return events.NewMulti(publishers...)
}

func loadConfiguration(logger zerolog.Logger, path string) (*application.Config, error) {
	var cfg *application.Config

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		logger.Warn().Msgf("no configuration file found at %s, using defaults", path)
		defaults := application.DefaultConfig()
		cfg = &defaults
	} else {
		defer f.Close()

		cfg, err = application.LoadConfiguration(f)
		if err != nil {
			return nil, err
		}
	}

	applyEnvironment(logger, cfg)

	return cfg, cfg.Validate()
}

// applyEnvironment lets environment variables override the file configuration
func applyEnvironment(logger zerolog.Logger, cfg *application.Config) {
	cfg.Mode = application.Mode(strings.ToLower(env.GetVariableOrDefault(logger, "ALARMER_MODE", string(cfg.Mode))))
	cfg.SystemName = env.GetVariableOrDefault(logger, "ALARMER_SYSTEM_NAME", cfg.SystemName)

	cfg.Controller.URL = env.GetVariableOrDefault(logger, "CONTROLLER_URL", cfg.Controller.URL)
	cfg.Controller.APIKey = env.GetVariableOrDefault(logger, "CONTROLLER_API_KEY", cfg.Controller.APIKey)
	cfg.Controller.ClientSecret = env.GetVariableOrDefault(logger, "CONTROLLER_CLIENT_SECRET", cfg.Controller.ClientSecret)

	cfg.Mail.SMTP.Password = env.GetVariableOrDefault(logger, "SMTP_PASSWORD", cfg.Mail.SMTP.Password)
	cfg.Mail.ResendAPIKey = env.GetVariableOrDefault(logger, "RESEND_API_KEY", cfg.Mail.ResendAPIKey)

	cfg.AMQP.URL = env.GetVariableOrDefault(logger, "ALARMER_AMQP_URL", cfg.AMQP.URL)
	cfg.Redis.Addr = env.GetVariableOrDefault(logger, "REDIS_ADDR", cfg.Redis.Addr)
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
