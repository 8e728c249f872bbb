package store

import "github.com/99minutos/user-directory/internal/core/domain"

// ActionType tags an Action.
type ActionType string

const (
	// ActionInit is dispatched once by New to seed the initial state.
	ActionInit ActionType = "@@INIT"
	// ActionReceivedUsers carries a users.json payload as the server sent it.
	ActionReceivedUsers ActionType = "RECEIVED_USERS"
)

// Action is a request for a state transition.
type Action struct {
	Type ActionType       `json:"type"`
	Data []domain.RawUser `json:"data,omitempty"`
}
