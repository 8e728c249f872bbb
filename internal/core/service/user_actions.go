package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-directory/internal/core/domain"
	"github.com/99minutos/user-directory/internal/core/ports"
	"github.com/99minutos/user-directory/internal/core/store"
	"github.com/99minutos/user-directory/internal/pkg/metrics"
)

// Dispatch hands an action to the store.
type Dispatch func(store.Action)

// Thunk is an asynchronous action: it does its work and dispatches the result.
type Thunk func(ctx context.Context, dispatch Dispatch) error

// ReceivedUsers builds the RECEIVED_USERS action for a raw payload.
func ReceivedUsers(data []domain.RawUser) store.Action {
	return store.Action{Type: store.ActionReceivedUsers, Data: data}
}

// FetchUsers returns a Thunk that GETs uri once and, on success, dispatches
// RECEIVED_USERS with the payload as received. Failures dispatch nothing.
func FetchUsers(src ports.UsersSource, uri string, log zerolog.Logger) Thunk {
	return func(ctx context.Context, dispatch Dispatch) error {
		log.Debug().Str("uri", uri).Msg("fetching users")

		start := time.Now()
		data, err := src.GetUsers(ctx, uri)
		metrics.UsersFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.UsersFetchTotal.WithLabelValues("error").Inc()
			log.Warn().Err(err).Str("uri", uri).Msg("users fetch failed")
			return fmt.Errorf("fetch users: %w", err)
		}
		metrics.UsersFetchTotal.WithLabelValues("success").Inc()

		dispatch(ReceivedUsers(data))

		log.Info().Str("uri", uri).Int("count", len(data)).Msg("users received")
		return nil
	}
}
