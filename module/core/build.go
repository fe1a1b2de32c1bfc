package core

import (
	"database/sql"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/nandanugg/apartment-notifier/config"
	"github.com/nandanugg/apartment-notifier/module/core/domain"
	handler "github.com/nandanugg/apartment-notifier/module/core/internal/handler/http"
	"github.com/nandanugg/apartment-notifier/module/core/internal/handler/subscriber"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/cache/redis"
	slackchat "github.com/nandanugg/apartment-notifier/module/core/internal/repository/chat/slack"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/database/postgres"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/mailer"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/mailer/smtp"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/publisher/rabbitmq"
	"github.com/nandanugg/apartment-notifier/module/core/service"
)

type MailConfig = smtp.Config

type Deps struct {
	DB      *sql.DB
	AMQP    *amqp.Connection
	MQTT    mqtt.Client
	Redis   *goredis.Client
	Slack   *slack.Client
	Logger  zerolog.Logger
	Geo     domain.GeoSettings
	Chat    service.ChatSettings
	SeenTTL time.Duration
	SMTP    MailConfig
}

type Module struct {
	ListingSvc      *service.ListingService
	NotificationSvc *service.NotificationService
	handler         *handler.ListingHandler
	subscriber      *subscriber.ListingSubscriber
}

func Build(d Deps) (*Module, error) {
	listingRepo := postgres.NewListingRepo(d.DB)
	seen := redis.NewSeenCache(d.Redis, d.SeenTTL)

	ch, err := d.AMQP.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := config.DeclareListingTopology(ch); err != nil {
		return nil, fmt.Errorf("listing topology: %w", err)
	}
	listingPub := rabbitmq.NewListingPublisher(ch, config.ListingExchange)

	var mail mailer.ListingMailer
	if d.SMTP.Enabled() {
		mail = smtp.NewListingMailer(d.SMTP)
	}

	notificationSvc := NewNotificationService(d.Slack, d.Chat, d.Logger)
	listingSvc := service.NewListingService(
		service.NewAnnotator(d.Geo),
		listingRepo,
		seen,
		notificationSvc,
		listingPub,
		mail,
		d.Logger,
	)

	h := handler.NewListingHandler(listingSvc, notificationSvc, d.Logger)
	sub := subscriber.NewListingSubscriber(d.MQTT, listingSvc, d.Logger)

	return &Module{
		ListingSvc:      listingSvc,
		NotificationSvc: notificationSvc,
		handler:         h,
		subscriber:      sub,
	}, nil
}

// NewNotificationService builds the chat side alone, for tools that do not
// need the listing pipeline.
func NewNotificationService(api *slack.Client, settings service.ChatSettings, logger zerolog.Logger) *service.NotificationService {
	return service.NewNotificationService(slackchat.NewClient(api), settings, logger)
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}
