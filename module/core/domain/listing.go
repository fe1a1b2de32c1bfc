package domain

import "time"

type Listing struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	URL       string      `json:"url"`
	Price     string      `json:"price"`
	Where     string      `json:"where"`
	Geotag    *Coordinate `json:"geotag,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Annotation
}

// Notable reports whether the listing is close to transit or inside a known
// neighborhood.
func (l *Listing) Notable() bool {
	return l.Bart != "" || l.Area != ""
}

type ListingQuery struct {
	Area         string
	NearBartOnly bool
	Limit        int
}

type ListingEventType string

const ListingPosted ListingEventType = "listing_posted"

type ListingEvent struct {
	Event     ListingEventType `json:"event"`
	Listing   Listing          `json:"listing"`
	Timestamp int64            `json:"timestamp"`
}

type Processed struct {
	Listing Listing `json:"listing"`
	Skipped bool    `json:"skipped"`
	Posted  bool    `json:"posted"`
}
