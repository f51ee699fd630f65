package menu

import "sync"

// Signal is a minimal observer list: subscribers are called synchronously and
// in subscription order when Emit is invoked. Subscribe returns an
// unsubscribe func. The subscriber list is mutex-guarded so a signal owned by
// the contextual-menu facade may fire from the renderer's frame clock.
type Signal[T any] struct {
	mu     sync.Mutex
	subs   []subscription[T]
	nextID int
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a func that removes it again.
// Unsubscribing is safe from within a handler; the in-flight Emit still
// delivers to the snapshot it started with.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every current subscriber with v.
func (s *Signal[T]) Emit(v T) {
	// Snapshot so handlers can unsubscribe (or subscribe) during delivery.
	s.mu.Lock()
	snapshot := make([]subscription[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()
	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// ItemSelectedEvent is the payload for item selection notifications.
type ItemSelectedEvent struct {
	Mode   Mode
	ItemID string
}

// TransitionEvent is the payload for per-frame transition progress updates.
type TransitionEvent struct {
	Type     TransitionType
	Progress float64
}

// TransitionDoneEvent is the payload for transition completion.
type TransitionDoneEvent struct {
	Type       TransitionType
	WasOpening bool
}

// CommandExecutedEvent is the payload published after a command's Execute ran,
// whether it succeeded or was recovered from a panic.
type CommandExecutedEvent struct {
	Command Command
	Result  CommandResult
}
