package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// GestureLock is the shared active-gesture token. At most one controller
// (the canvas or a single card) holds it at a time, which keeps card drags
// and canvas pans mutually exclusive per gesture.
type GestureLock struct {
	owner model.GestureOwner
}

// NewGestureLock creates a lock held by nobody.
func NewGestureLock() *GestureLock {
	return &GestureLock{owner: model.NoGesture}
}

// Acquire takes the token for o. It succeeds when the token is free or
// already held by o.
func (g *GestureLock) Acquire(o model.GestureOwner) bool {
	if g.owner.IsNone() || g.owner == o {
		g.owner = o
		return true
	}
	return false
}

// Release frees the token if it is held by o. Releasing a token held by
// someone else does nothing.
func (g *GestureLock) Release(o model.GestureOwner) {
	if g.owner == o {
		g.owner = model.NoGesture
	}
}

// Owner returns the current holder.
func (g *GestureLock) Owner() model.GestureOwner {
	return g.owner
}
