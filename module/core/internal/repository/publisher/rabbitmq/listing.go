package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/publisher"
)

var _ publisher.ListingPublisher = (*ListingPublisher)(nil)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type ListingPublisher struct {
	ch       amqpChannel
	exchange string
}

// NewListingPublisher publishes to exchange over ch. The exchange must already
// be declared.
func NewListingPublisher(ch *amqp.Channel, exchange string) *ListingPublisher {
	return &ListingPublisher{ch: ch, exchange: exchange}
}

type listingMessage struct {
	Event     domain.ListingEventType `json:"event"`
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	URL       string                  `json:"url"`
	Price     string                  `json:"price"`
	Area      string                  `json:"area"`
	Bart      string                  `json:"bart"`
	BartDist  domain.TransitDistance  `json:"bart_dist"`
	Timestamp int64                   `json:"timestamp"`
}

func (p *ListingPublisher) PublishListing(ctx context.Context, event *domain.ListingEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func encodeEvent(event *domain.ListingEvent) ([]byte, error) {
	l := event.Listing
	msg := listingMessage{
		Event:     event.Event,
		ID:        l.ID,
		Name:      l.Name,
		URL:       l.URL,
		Price:     l.Price,
		Area:      l.Area,
		Bart:      l.Bart,
		BartDist:  l.BartDist,
		Timestamp: event.Timestamp,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal listing event: %w", err)
	}
	return body, nil
}
