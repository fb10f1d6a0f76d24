package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/core/claims"
	"github.com/bindaas/storefront/storage"
)

// LoadAndSave loads the client's session into the request context and
// commits it once the handler is done.
func LoadAndSave(sm *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			})
			sm.LoadAndSave(next).ServeHTTP(w, r.WithContext(ctx))

			return err
		}
		return h
	}
	return m
}

// Authenticate rejects anonymous visitors and exposes the logged in
// customer to the handler through claims.
func Authenticate(store storage.Store) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			mgr, err := NewManager(ctx, store)
			if err != nil {
				return err
			}

			id := mgr.Current()
			if !id.LoggedIn {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}

			ctx = claims.Set(ctx, claims.Claims{
				UserID: id.ID,
				Email:  id.Email,
				Name:   id.Name,
			})

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
