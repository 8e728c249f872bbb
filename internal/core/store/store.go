package store

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-directory/internal/pkg/metrics"
)

// Store holds the current State and serializes transitions through a Reducer.
// Readers always observe a complete snapshot.
type Store struct {
	mu      sync.Mutex // serializes Dispatch
	state   atomic.Pointer[State]
	reducer Reducer
	log     zerolog.Logger

	subMu  sync.RWMutex
	nextID int
	subs   map[int]func(*State)
}

// New builds a Store and dispatches ActionInit through reducer.
func New(reducer Reducer, log zerolog.Logger) *Store {
	if reducer == nil {
		reducer = Reduce
	}
	s := &Store{
		reducer: reducer,
		log:     log,
		subs:    make(map[int]func(*State)),
	}
	s.Dispatch(Action{Type: ActionInit})
	return s
}

// State returns the current snapshot.
func (s *Store) State() *State {
	return s.state.Load()
}

// Dispatch applies action and notifies subscribers when the state changed.
// Subscribers run while the store is still serialized, so they see snapshots
// in dispatch order and must not call Dispatch themselves.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Load()
	next := s.reducer(prev, action)
	s.state.Store(next)

	metrics.ActionsDispatchedTotal.WithLabelValues(string(action.Type)).Inc()

	if next == prev {
		s.log.Debug().Str("action", string(action.Type)).Msg("action left state unchanged")
		return
	}

	metrics.UsersInState.Set(float64(len(next.Users)))
	s.log.Debug().
		Str("action", string(action.Type)).
		Int("users", len(next.Users)).
		Msg("state replaced")

	s.notify(next)
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(*State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(state *State) {
	s.subMu.RLock()
	fns := make([]func(*State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, fn := range fns {
		fn(state)
	}
}
