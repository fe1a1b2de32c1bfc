package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nandanugg/apartment-notifier/module/core/domain"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/cache"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/database"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/mailer"
	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/publisher"
)

const defaultListLimit = 50

type listingNotifier interface {
	PostListing(ctx context.Context, l *domain.Listing) error
}

type ListingService struct {
	annotator *Annotator
	repo      database.ListingRepository
	seen      cache.SeenCache
	notifier  listingNotifier
	publisher publisher.ListingPublisher
	mailer    mailer.ListingMailer
	logger    zerolog.Logger
	now       func() time.Time
}

// NewListingService wires the listing pipeline. mailer may be nil.
func NewListingService(
	annotator *Annotator,
	repo database.ListingRepository,
	seen cache.SeenCache,
	notifier listingNotifier,
	pub publisher.ListingPublisher,
	mail mailer.ListingMailer,
	logger zerolog.Logger,
) *ListingService {
	return &ListingService{
		annotator: annotator,
		repo:      repo,
		seen:      seen,
		notifier:  notifier,
		publisher: pub,
		mailer:    mail,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ListingService) Annotate(geotag *domain.Coordinate, where string) (domain.Annotation, error) {
	return s.annotator.Annotate(geotag, where)
}

// Process annotates, stores and, when the listing is notable, announces a
// listing. Listings seen before are skipped.
func (s *ListingService) Process(ctx context.Context, l *domain.Listing) (*domain.Processed, error) {
	ann, err := s.annotator.Annotate(l.Geotag, l.Where)
	if err != nil {
		return nil, fmt.Errorf("annotate listing %s: %w", l.ID, err)
	}
	l.Annotation = ann
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}

	fresh, err := s.seen.MarkSeen(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("mark seen: %w", err)
	}
	if !fresh {
		s.logger.Debug().Str("listing_id", l.ID).Msg("listing already processed")
		return &domain.Processed{Listing: *l, Skipped: true}, nil
	}

	if err := s.repo.Insert(ctx, l); err != nil {
		s.forget(ctx, l.ID)
		return nil, fmt.Errorf("save listing: %w", err)
	}

	result := &domain.Processed{Listing: *l}
	if !l.Notable() {
		return result, nil
	}

	if err := s.notifier.PostListing(ctx, l); err != nil {
		s.forget(ctx, l.ID)
		return nil, fmt.Errorf("post listing: %w", err)
	}
	result.Posted = true

	event := &domain.ListingEvent{
		Event:     domain.ListingPosted,
		Listing:   *l,
		Timestamp: s.now().Unix(),
	}
	if err := s.publisher.PublishListing(ctx, event); err != nil {
		s.logger.Error().Err(err).Str("listing_id", l.ID).Msg("publish listing event")
	}

	if s.mailer != nil {
		if err := s.mailer.SendListing(ctx, l); err != nil {
			s.logger.Error().Err(err).Str("listing_id", l.ID).Msg("email listing")
		}
	}

	return result, nil
}

// forget releases the seen mark after a failed save or post so a redelivery
// of the listing is processed instead of skipped.
func (s *ListingService) forget(ctx context.Context, id string) {
	if err := s.seen.Forget(context.WithoutCancel(ctx), id); err != nil {
		s.logger.Error().Err(err).Str("listing_id", id).Msg("forget seen listing")
	}
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context, query *domain.ListingQuery) ([]domain.Listing, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	return s.repo.List(ctx, query)
}
