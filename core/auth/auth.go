// Package auth keeps track of who is shopping. Accounts are simulated: any
// non-empty credentials log in, and the resulting identity is remembered in
// the client's store.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bindaas/storefront/simulate"
	"github.com/bindaas/storefront/storage"
	"github.com/bindaas/storefront/validate"
)

// StorageKey is where the identity lives in a client's store.
const StorageKey = "bindaas_user"

const DefaultDelay = time.Second

var (
	ErrInvalidCredentials = validate.Errorf("invalid credentials")
	ErrFieldsRequired     = validate.Errorf("all fields are required")
)

// Identity is the current customer. The zero value is the anonymous visitor.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LoggedIn bool   `json:"isLoggedIn"`
}

var Anonymous = Identity{}

// Manager owns the identity of one client. It rehydrates from the store when
// created and writes through on every change. Calls must not overlap.
type Manager struct {
	store    storage.Store
	delay    time.Duration
	now      func() time.Time
	identity Identity
}

type Option func(*Manager)

// WithDelay sets how long login and registration take.
func WithDelay(d time.Duration) Option {
	return func(m *Manager) { m.delay = d }
}

// WithClock replaces the clock user identifiers are derived from.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(ctx context.Context, store storage.Store, opts ...Option) (*Manager, error) {
	m := Manager{
		store: store,
		delay: DefaultDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	b, err := store.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &m, nil
	case err != nil:
		return nil, fmt.Errorf("reading identity: %w", err)
	}

	if err := json.Unmarshal(b, &m.identity); err != nil {
		return nil, fmt.Errorf("decoding identity: %w", err)
	}

	return &m, nil
}

func (m *Manager) Current() Identity {
	return m.identity
}

// Login accepts any pair of non-empty credentials after the configured
// delay. The display name is the local part of the email.
func (m *Manager) Login(ctx context.Context, email string, password string) (Identity, error) {
	if err := simulate.Wait(ctx, m.delay); err != nil {
		return Anonymous, err
	}

	if email == "" || password == "" {
		return Anonymous, ErrInvalidCredentials
	}

	name, _, _ := strings.Cut(email, "@")

	return m.establish(ctx, Identity{
		ID:       m.newID(),
		Email:    email,
		Name:     name,
		LoggedIn: true,
	})
}

// Register accepts any non-empty name, email and password after the
// configured delay. Nothing checks whether the email is already taken.
func (m *Manager) Register(ctx context.Context, name string, email string, password string) (Identity, error) {
	if err := simulate.Wait(ctx, m.delay); err != nil {
		return Anonymous, err
	}

	if name == "" || email == "" || password == "" {
		return Anonymous, ErrFieldsRequired
	}

	return m.establish(ctx, Identity{
		ID:       m.newID(),
		Email:    email,
		Name:     name,
		LoggedIn: true,
	})
}

// Logout forgets the identity, in memory and in the store.
func (m *Manager) Logout(ctx context.Context) error {
	m.identity = Anonymous

	if err := m.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("deleting identity: %w", err)
	}
	return nil
}

func (m *Manager) establish(ctx context.Context, id Identity) (Identity, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return Anonymous, fmt.Errorf("encoding identity: %w", err)
	}

	if err := m.store.Set(ctx, StorageKey, b); err != nil {
		return Anonymous, fmt.Errorf("writing identity: %w", err)
	}

	m.identity = id
	return id, nil
}

func (m *Manager) newID() string {
	return "user_" + strconv.FormatInt(m.now().UnixMilli(), 10)
}
