package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/core/cart"
	"github.com/bindaas/storefront/storage"
	"github.com/bindaas/storefront/validate"
)

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Signup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func HandleLogin(sm *scs.SessionManager, store storage.Store, delay time.Duration) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in Login
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		mgr, err := NewManager(ctx, store, WithDelay(delay))
		if err != nil {
			return err
		}

		id, err := mgr.Login(ctx, in.Email, in.Password)
		if err != nil {
			if validate.IsError(err) {
				return weberr.Invalid(err)
			}
			return fmt.Errorf("logging in: %w", err)
		}

		if err := sm.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}

		return web.Respond(ctx, w, id, http.StatusOK)
	}
}

func HandleSignup(sm *scs.SessionManager, store storage.Store, delay time.Duration) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in Signup
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		mgr, err := NewManager(ctx, store, WithDelay(delay))
		if err != nil {
			return err
		}

		id, err := mgr.Register(ctx, in.Name, in.Email, in.Password)
		if err != nil {
			if validate.IsError(err) {
				return weberr.Invalid(err)
			}
			return fmt.Errorf("registering: %w", err)
		}

		if err := sm.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}

		return web.Respond(ctx, w, id, http.StatusCreated)
	}
}

// HandleLogout forgets the customer and empties their cart.
func HandleLogout(sm *scs.SessionManager, store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		mgr, err := NewManager(ctx, store)
		if err != nil {
			return err
		}

		if err := mgr.Logout(ctx); err != nil {
			return err
		}

		if err := cart.Delete(ctx, store); err != nil {
			return err
		}

		if err := sm.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleShowCurrent(store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		mgr, err := NewManager(ctx, store)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, mgr.Current(), http.StatusOK)
	}
}
