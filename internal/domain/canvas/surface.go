package canvas

import "github.com/ericfisherdev/repocanvas/internal/domain/model"

// PointerListener receives global pointer motion and releases while it is
// subscribed to a Surface.
type PointerListener interface {
	PointerMoved(pos model.Position)
	PointerReleased(button model.PointerButton)
}

// ListenerFuncs adapts a pair of functions to PointerListener. Nil fields are skipped.
type ListenerFuncs struct {
	OnMove    func(pos model.Position)
	OnRelease func(button model.PointerButton)
}

// PointerMoved calls OnMove.
func (f ListenerFuncs) PointerMoved(pos model.Position) {
	if f.OnMove != nil {
		f.OnMove(pos)
	}
}

// PointerReleased calls OnRelease.
func (f ListenerFuncs) PointerReleased(button model.PointerButton) {
	if f.OnRelease != nil {
		f.OnRelease(button)
	}
}

type subscriber struct {
	id       uint64
	listener PointerListener
}

// Surface is the global pointer-event surface. Controllers subscribe to it
// only while a drag is active; events reach subscribed listeners only.
type Surface struct {
	nextID      uint64
	subscribers []subscriber
}

// NewSurface creates an empty Surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Subscription is the handle returned by Subscribe. Cancel is idempotent.
type Subscription struct {
	surface *Surface
	id      uint64
}

// Subscribe registers l for pointer moves and releases until the returned
// subscription is canceled.
func (s *Surface) Subscribe(l PointerListener) *Subscription {
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: s.nextID, listener: l})
	return &Subscription{surface: s, id: s.nextID}
}

// Cancel removes the listener from its surface. Calling Cancel on a nil or
// already-canceled subscription does nothing.
func (sub *Subscription) Cancel() {
	if sub == nil || sub.surface == nil {
		return
	}
	sub.surface.remove(sub.id)
	sub.surface = nil
}

// Active reports whether the subscription is still registered.
func (sub *Subscription) Active() bool {
	return sub != nil && sub.surface != nil
}

func (s *Surface) remove(id uint64) {
	for i, sb := range s.subscribers {
		if sb.id == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

func (s *Surface) subscribed(id uint64) bool {
	for _, sb := range s.subscribers {
		if sb.id == id {
			return true
		}
	}
	return false
}

// snapshot copies the subscriber list so listeners may unsubscribe (or
// subscribe others) while an event is being delivered.
func (s *Surface) snapshot() []subscriber {
	out := make([]subscriber, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// Move delivers a pointer move to every subscribed listener.
func (s *Surface) Move(pos model.Position) {
	for _, sb := range s.snapshot() {
		if s.subscribed(sb.id) {
			sb.listener.PointerMoved(pos)
		}
	}
}

// Release delivers a pointer release to every subscribed listener.
func (s *Surface) Release(button model.PointerButton) {
	for _, sb := range s.snapshot() {
		if s.subscribed(sb.id) {
			sb.listener.PointerReleased(button)
		}
	}
}

// ListenerCount returns the number of currently subscribed listeners.
func (s *Surface) ListenerCount() int {
	return len(s.subscribers)
}
