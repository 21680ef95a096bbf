package driven

import (
	"context"

	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// LookupStore defines the driven port for the history of submitted usernames.
// Record assigns ID and, when zero, LookedUpAt.
type LookupStore interface {
	Record(ctx context.Context, lookup model.Lookup) (model.Lookup, error)
	ListRecent(ctx context.Context, limit int) ([]model.Lookup, error)
	// RecentUsernames returns distinct usernames of successful lookups,
	// most recent first.
	RecentUsernames(ctx context.Context, limit int) ([]string, error)
}
