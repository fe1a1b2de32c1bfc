package publisher

import (
	"context"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type ListingPublisher interface {
	PublishListing(ctx context.Context, event *domain.ListingEvent) error
}
