// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ericfisherdev/repocanvas/internal/domain/model"
	"github.com/ericfisherdev/repocanvas/internal/domain/port/driven"
)

// ErrFetchFailed is the single failure of a repository lookup. Transport
// errors, missing users and rate limits all collapse into it.
var ErrFetchFailed = errors.New("fetch failed")

// FetchFailedMessage is the inline message shown for ErrFetchFailed.
const FetchFailedMessage = "Failed to fetch repositories. Please check the username and try again."

// UserMessage returns the text to show for a lookup error, or "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return FetchFailedMessage
}

// Initial grid layout for freshly loaded cards.
const (
	gridColumns = 5
	gridOriginX = 50
	gridOriginY = 50
	gridStepX   = 300
	gridStepY   = 200
)

// GridPosition returns the initial canvas position of the card at index in a
// fixed five-column grid, independent of card content size.
func GridPosition(index int) model.Position {
	return model.Position{
		X: float64(gridOriginX + (index%gridColumns)*gridStepX),
		Y: float64(gridOriginY + (index/gridColumns)*gridStepY),
	}
}

// RepositoryLoader fetches a user's repositories and places them on the grid.
type RepositoryLoader struct {
	lister  driven.RepositoryLister
	lookups driven.LookupStore
	logger  *slog.Logger
}

// NewRepositoryLoader creates a RepositoryLoader. lookups may be nil, in which
// case lookups are not recorded.
func NewRepositoryLoader(lister driven.RepositoryLister, lookups driven.LookupStore, logger *slog.Logger) *RepositoryLoader {
	return &RepositoryLoader{
		lister:  lister,
		lookups: lookups,
		logger:  logger,
	}
}

// Load lists the repositories of username and returns them with their grid
// positions. Any failure is returned as ErrFetchFailed with no partial result.
// The username is passed through as given, including the empty string.
func (l *RepositoryLoader) Load(ctx context.Context, username string) ([]model.PlacedRepository, error) {
	repos, err := l.lister.ListUserRepositories(ctx, username)
	if err != nil {
		l.logger.Warn("repository lookup failed", "username", username, "error", err)
		l.record(ctx, username, model.LookupFailed, 0)
		return nil, ErrFetchFailed
	}

	placed := make([]model.PlacedRepository, 0, len(repos))
	for i, repo := range repos {
		placed = append(placed, model.PlacedRepository{
			Repository: repo,
			Position:   GridPosition(i),
		})
	}

	l.logger.Info("repositories loaded", "username", username, "count", len(placed))
	l.record(ctx, username, model.LookupOK, len(placed))

	return placed, nil
}

// record stores the lookup outcome. A store failure is logged, never returned.
func (l *RepositoryLoader) record(ctx context.Context, username string, outcome model.LookupOutcome, count int) {
	if l.lookups == nil {
		return
	}

	_, err := l.lookups.Record(ctx, model.Lookup{
		Username:  username,
		Outcome:   outcome,
		RepoCount: count,
	})
	if err != nil {
		l.logger.Error("failed to record lookup", "username", username, "error", err)
	}
}
