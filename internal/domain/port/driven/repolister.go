package driven

import (
	"context"

	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// RepositoryLister defines the driven port for listing a user's repositories.
// Implementations return an error for any transport failure or non-success
// status; callers do not distinguish between them.
type RepositoryLister interface {
	ListUserRepositories(ctx context.Context, username string) ([]model.Repository, error)
}
