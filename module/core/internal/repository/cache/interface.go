package cache

import "context"

type SeenCache interface {
	// MarkSeen records the listing id and reports whether it was new.
	MarkSeen(ctx context.Context, listingID string) (bool, error)
	// Forget drops the mark so the listing is processed again on its next delivery.
	Forget(ctx context.Context, listingID string) error
}
