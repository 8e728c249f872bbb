package store

import "github.com/99minutos/user-directory/internal/core/domain"

// State is the whole application state. Snapshots are never mutated after
// they are published; every transition produces a new *State.
type State struct {
	Users []domain.User `json:"users"`
}

// Reducer maps the previous state and an action to the next state.
type Reducer func(state *State, action Action) *State

// InitialState returns the state before any users were received.
func InitialState() *State {
	return &State{Users: []domain.User{}}
}

// Reduce is the users reducer. RECEIVED_USERS replaces the users wholesale;
// every other action returns state as is.
func Reduce(state *State, action Action) *State {
	if state == nil {
		state = InitialState()
	}

	switch action.Type {
	case ActionReceivedUsers:
		return &State{Users: domain.Normalize(action.Data)}
	default:
		return state
	}
}
