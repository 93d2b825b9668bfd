package analyzer

import (
	"context"
	"time"
)

// Searcher runs a keyless text search and returns ranked hits.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchHit, error)
}

// Fetcher fetches a URL and returns the body plus metadata.
type Fetcher interface {
	Fetch(ctx context.Context, request FetchRequest) (FetchResponse, error)
}

// HeadlessDetector decides whether a page needs a rendering fetch.
type HeadlessDetector interface {
	ShouldPromote(probe FetchResponse) bool
}

// Throttle delays outbound calls per host.
type Throttle interface {
	Wait(ctx context.Context, url string) error
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces request IDs.
type IDGenerator interface {
	NewID() (string, error)
}
