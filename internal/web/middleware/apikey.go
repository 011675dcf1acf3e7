package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/emvolvovsky-bot/PetMatch/internal/web/errs"
	"github.com/emvolvovsky-bot/PetMatch/internal/web/mux"
)

// ErrInvalidAPIKey is the message returned to callers presenting a
// missing or wrong API key.
var ErrInvalidAPIKey = errors.New("invalid api key")

// APIKey rejects requests whose header does not carry the expected key.
// The comparison is constant-time.
func APIKey(header, key string) mux.Middleware {
	m := func(handler mux.Handler) mux.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			got := r.Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return errs.New(http.StatusUnauthorized, ErrInvalidAPIKey)
			}

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
