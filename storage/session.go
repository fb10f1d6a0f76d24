package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/sirupsen/logrus"
)

// SessionStore persists scs session blobs in a Store so that sessions
// survive a restart whenever the Store does.
type SessionStore struct {
	store  Store
	prefix string
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type envelope struct {
	Expiry time.Time `json:"expiry"`
	Data   []byte    `json:"data"`
}

var _ scs.Store = (*SessionStore)(nil)

func NewSessionStore(store Store, prefix string) *SessionStore {
	return &SessionStore{
		store:  store,
		prefix: prefix,
		now:    time.Now,
	}
}

func (s *SessionStore) key(token string) string {
	return s.namespace() + token
}

func (s *SessionStore) namespace() string {
	return s.prefix + "session:"
}

func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	ctx := context.Background()

	raw, err := s.store.Get(ctx, s.key(token))
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetching session: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, fmt.Errorf("decoding session: %w", err)
	}

	if !s.now().Before(env.Expiry) {
		if err := s.store.Delete(ctx, s.key(token)); err != nil {
			return nil, false, fmt.Errorf("deleting expired session: %w", err)
		}
		return nil, false, nil
	}

	return env.Data, true, nil
}

func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	raw, err := json.Marshal(envelope{Expiry: expiry, Data: b})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := s.store.Set(context.Background(), s.key(token), raw); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(token string) error {
	if err := s.store.Delete(context.Background(), s.key(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Sweep deletes every expired session and reports how many went. Stores that
// cannot list their keys rely on their own expiry and are left alone.
func (s *SessionStore) Sweep(ctx context.Context) (int, error) {
	ls, ok := s.store.(Lister)
	if !ok {
		return 0, nil
	}

	keys, err := ls.Keys(ctx, s.namespace())
	if err != nil {
		return 0, fmt.Errorf("listing sessions: %w", err)
	}

	now := s.now()
	swept := 0
	for _, k := range keys {
		raw, err := s.store.Get(ctx, k)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return swept, fmt.Errorf("fetching session: %w", err)
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		if now.Before(env.Expiry) {
			continue
		}

		if err := s.store.Delete(ctx, k); err != nil {
			return swept, fmt.Errorf("deleting expired session: %w", err)
		}
		swept++
	}

	return swept, nil
}

// StartCleanup sweeps expired sessions every interval until StopCleanup is
// called.
func (s *SessionStore) StartCleanup(interval time.Duration, log logrus.FieldLogger) {
	s.stop = make(chan struct{})
	go s.cleanup(interval, s.stop, log)
}

func (s *SessionStore) StopCleanup() {
	if s.stop == nil {
		return
	}
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *SessionStore) cleanup(interval time.Duration, stop <-chan struct{}, log logrus.FieldLogger) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			n, err := s.Sweep(ctx)
			cancel()

			if err != nil {
				log.WithError(err).Warn("sweeping sessions")
			}
			if n > 0 {
				log.WithField("sessions", n).Debug("expired sessions removed")
			}
		}
	}
}

// ClientStore is the Store of a single client, backed by the scs session
// loaded into the request context. It only works inside a handler wrapped by
// the session manager's LoadAndSave.
type ClientStore struct {
	sm *scs.SessionManager
}

func NewClientStore(sm *scs.SessionManager) *ClientStore {
	return &ClientStore{sm: sm}
}

func (c *ClientStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.sm.Exists(ctx, key) {
		return nil, ErrNotFound
	}
	return c.sm.GetBytes(ctx, key), nil
}

func (c *ClientStore) Set(ctx context.Context, key string, val []byte) error {
	c.sm.Put(ctx, key, val)
	return nil
}

func (c *ClientStore) Delete(ctx context.Context, key string) error {
	c.sm.Remove(ctx, key)
	return nil
}
