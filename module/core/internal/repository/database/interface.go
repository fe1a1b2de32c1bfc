package database

import (
	"context"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
)

type ListingRepository interface {
	Insert(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context, query *domain.ListingQuery) ([]domain.Listing, error)
}
