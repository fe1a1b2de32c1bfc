package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

const (
	TopicPattern   = "/apartments/listing"
	processTimeout = 30 * time.Second
)

type listingService interface {
	Process(ctx context.Context, l *domain.Listing) (*domain.Processed, error)
}

type listingMessage struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	Price     string   `json:"price"`
	Where     string   `json:"where"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timestamp int64    `json:"timestamp"`
}

type ListingSubscriber struct {
	client     mqtt.Client
	listingSvc listingService
	logger     zerolog.Logger
	report     func(err error)
}

func NewListingSubscriber(client mqtt.Client, listingSvc listingService, logger zerolog.Logger) *ListingSubscriber {
	return &ListingSubscriber{
		client:     client,
		listingSvc: listingSvc,
		logger:     logger,
		report:     func(err error) { sentry.CaptureException(err) },
	}
}

func (s *ListingSubscriber) Start() error {
	token := s.client.Subscribe(TopicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *ListingSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw listingMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		s.logger.Warn().Err(err).Str("topic", msg.Topic()).Msg("invalid listing message")
		return
	}

	if err := validateListingMessage(&raw); err != nil {
		s.logger.Warn().Err(err).Str("listing_id", raw.ID).Msg("validation error")
		return
	}

	l := &domain.Listing{
		ID:     raw.ID,
		Name:   raw.Name,
		URL:    raw.URL,
		Price:  raw.Price,
		Where:  raw.Where,
		Geotag: &domain.Coordinate{Lat: *raw.Latitude, Lon: *raw.Longitude},
	}
	if raw.Timestamp > 0 {
		l.CreatedAt = time.Unix(raw.Timestamp, 0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	res, err := s.listingSvc.Process(ctx, l)
	if err != nil {
		s.logger.Error().Err(err).Str("listing_id", l.ID).Msg("process listing")
		if !errors.Is(err, domain.ErrInvalidCoordinate) {
			s.report(err)
		}
		return
	}

	s.logger.Info().
		Str("listing_id", l.ID).
		Str("area", res.Listing.Area).
		Bool("posted", res.Posted).
		Bool("skipped", res.Skipped).
		Msg("listing processed")
}

func validateListingMessage(msg *listingMessage) error {
	if msg.ID == "" {
		return fmt.Errorf("id: required")
	}
	if msg.URL == "" {
		return fmt.Errorf("url: required")
	}
	if msg.Latitude == nil || msg.Longitude == nil {
		return fmt.Errorf("geotag: required")
	}
	if *msg.Latitude < -90 || *msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if *msg.Longitude < -180 || *msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	return nil
}
