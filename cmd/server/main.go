package main

import (
	"context"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/nandanugg/apartment-notifier/config"
	"github.com/nandanugg/apartment-notifier/module/core"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if err := config.NewSentry(cfg); err != nil {
		logger.Fatal().Err(err).Msg("sentry")
	}
	defer sentry.Flush(2 * time.Second)

	geo, err := config.LoadGeoSettings(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("geo settings")
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer func() { _ = db.Close() }()

	if err := config.MigratePostgres(context.Background(), db); err != nil {
		logger.Fatal().Err(err).Msg("postgres migrate")
	}

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq")
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("mqtt")
	}
	defer mqttClient.Disconnect(250)

	redisClient, err := config.NewRedis(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer func() { _ = redisClient.Close() }()

	slackClient, err := config.NewSlack(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("slack")
	}

	coreModule, err := core.Build(core.Deps{
		DB:      db,
		AMQP:    amqpConn,
		MQTT:    mqttClient,
		Redis:   redisClient,
		Slack:   slackClient,
		Logger:  logger,
		Geo:     geo,
		Chat:    config.ChatSettings(cfg),
		SeenTTL: cfg.SeenTTL,
		SMTP: core.MailConfig{
			Server:    cfg.SMTPServer,
			Port:      cfg.SMTPPort,
			User:      cfg.SMTPUser,
			Pass:      cfg.SMTPPass,
			FromEmail: cfg.FromEmail,
			ToEmail:   cfg.ToEmail,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("core module")
	}

	if err := coreModule.StartSubscribers(); err != nil {
		logger.Fatal().Err(err).Msg("start subscribers")
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient, redisClient)
	health.Register(r)

	coreModule.RegisterRoutes(&r.RouterGroup)

	logger.Info().Str("port", cfg.HTTPPort).Int("areas", len(geo.Areas)).Int("stations", len(geo.Stations)).Msg("listening")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Error().Err(err).Msg("server")
		os.Exit(1)
	}
}
