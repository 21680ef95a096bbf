package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/repocanvas/internal/domain/canvas"
	"github.com/ericfisherdev/repocanvas/internal/domain/model"
)

// ErrSessionNotFound is returned for an unknown or evicted session ID.
var ErrSessionNotFound = errors.New("canvas session not found")

// Loader loads placed repositories for a username.
type Loader interface {
	Load(ctx context.Context, username string) ([]model.PlacedRepository, error)
}

// SessionView is the render-ready state of one canvas session.
type SessionView struct {
	ID       string
	Username string
	Error    string
	Loading  bool
	Board    canvas.Snapshot
}

// session is one canvas. Its mutex serializes every event, standing in for
// the single-threaded UI event loop of a browser tab.
type session struct {
	mu         sync.Mutex
	id         string
	board      *canvas.Board
	username   string
	errMsg     string
	loading    bool
	generation uint64
	closed     bool
	lastSeen   time.Time
}

func (s *session) view() SessionView {
	return SessionView{
		ID:       s.id,
		Username: s.username,
		Error:    s.errMsg,
		Loading:  s.loading,
		Board:    s.board.Snapshot(),
	}
}

// CanvasService keeps one Board per browser session and applies pointer,
// zoom and lookup events to it.
type CanvasService struct {
	loader Loader
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewCanvasService creates a CanvasService. Sessions idle longer than ttl are
// evicted by Start; a ttl of zero disables eviction.
func NewCanvasService(loader Loader, ttl time.Duration, logger *slog.Logger) *CanvasService {
	return &CanvasService{
		loader:   loader,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Create starts a new empty canvas session.
func (s *CanvasService) Create() SessionView {
	sess := &session{
		id:       uuid.NewString(),
		board:    canvas.NewBoard(),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Debug("canvas session created", "session", sess.id)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view()
}

// Len returns the number of live sessions.
func (s *CanvasService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *CanvasService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// with runs fn on the session under its lock and returns the resulting view.
func (s *CanvasService) with(id string, fn func(*session)) (SessionView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return SessionView{}, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	if fn != nil {
		fn(sess)
	}
	return sess.view(), nil
}

// Snapshot returns the current state of a session.
func (s *CanvasService) Snapshot(id string) (SessionView, error) {
	return s.with(id, nil)
}

// Pointer applies a pointer event to the session's board.
func (s *CanvasService) Pointer(id string, ev model.PointerEvent) (SessionView, error) {
	return s.with(id, func(sess *session) {
		sess.board.Dispatch(ev)
	})
}

// Zoom zooms the session's viewport one step in or out.
func (s *CanvasService) Zoom(id string, in bool) (SessionView, error) {
	return s.with(id, func(sess *session) {
		if in {
			sess.board.ZoomIn()
		} else {
			sess.board.ZoomOut()
		}
	})
}

// Submit looks up the repositories of username and replaces the session's
// cards. The previous error is cleared before the request starts. The
// session lock is not held during the request, so pointer events keep being
// applied while it is in flight. When several submits overlap, only the
// latest one applies its result.
//
// The returned error is non-nil only for an unknown session; a failed lookup
// is reported through SessionView.Error.
func (s *CanvasService) Submit(ctx context.Context, id, username string) (SessionView, error) {
	var generation uint64
	_, err := s.with(id, func(sess *session) {
		sess.errMsg = ""
		sess.username = username
		sess.loading = true
		sess.generation++
		generation = sess.generation
	})
	if err != nil {
		return SessionView{}, err
	}

	placed, loadErr := s.loader.Load(ctx, username)

	return s.with(id, func(sess *session) {
		if sess.generation != generation {
			return
		}
		sess.loading = false
		if loadErr != nil {
			sess.board.Clear()
			sess.errMsg = UserMessage(loadErr)
			return
		}
		sess.board.Replace(placed)
	})
}

// Close tears down a session and its board.
func (s *CanvasService) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.closeSession(sess)
	return nil
}

func (s *CanvasService) closeSession(sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.closed = true
	sess.board.Close()
}

// Start runs the idle-session sweeper until ctx is canceled. It blocks.
func (s *CanvasService) Start(ctx context.Context) {
	if s.ttl <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			s.logger.Info("canvas service stopped")
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.logger.Info("evicted idle canvas sessions", "count", n)
			}
		}
	}
}

// EvictIdle closes every session not used within the TTL and returns how
// many were evicted.
func (s *CanvasService) EvictIdle() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var idle []*session
	for id, sess := range s.sessions {
		sess.mu.Lock()
		stale := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		s.closeSession(sess)
	}
	return len(idle)
}

func (s *CanvasService) closeAll() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range all {
		s.closeSession(sess)
	}
}
