package mailer

import (
	"context"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type ListingMailer interface {
	SendListing(ctx context.Context, listing *domain.Listing) error
}
