package model

import "time"

// LookupOutcome is the result of a repository listing request.
type LookupOutcome string

const (
	LookupOK     LookupOutcome = "ok"
	LookupFailed LookupOutcome = "failed"
)

// Lookup records one submitted username and how the listing request went.
type Lookup struct {
	ID         int64
	Username   string
	Outcome    LookupOutcome
	RepoCount  int
	LookedUpAt time.Time
}
