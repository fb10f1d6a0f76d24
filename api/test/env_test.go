package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/bindaas/storefront/api"
	"github.com/bindaas/storefront/api/background"
	"github.com/bindaas/storefront/core/catalog"
	"github.com/bindaas/storefront/core/checkout"
	"github.com/bindaas/storefront/rate"
	"github.com/bindaas/storefront/storage"
	"github.com/sirupsen/logrus"
)

// processor approves payments unless told to decline them.
type processor struct {
	mu      sync.Mutex
	decline bool
	charged []checkout.Order
}

func (p *processor) Charge(ctx context.Context, ord checkout.Order, pay checkout.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.decline {
		return checkout.ErrDeclined
	}
	p.charged = append(p.charged, ord)
	return nil
}

func (p *processor) setDecline(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.decline = v
}

func (p *processor) orders() []checkout.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]checkout.Order(nil), p.charged...)
}

type TestEnv struct {
	*httptest.Server
	Store     *storage.Memory
	Processor *processor
}

type envOption func(*api.APIConfig)

func withLimiter(lim *rate.Limiter) envOption {
	return func(cfg *api.APIConfig) { cfg.Limiter = lim }
}

func NewTestEnv(t *testing.T, opts ...envOption) *TestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := storage.NewMemory()

	sm := scs.New()
	sm.Store = storage.NewSessionStore(store, "test:")

	proc := &processor{}
	bg := background.New(log)

	cfg := api.APIConfig{
		Log:        log,
		Session:    sm,
		Catalog:    catalog.Default(),
		Background: bg,
		Processor:  proc,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httptest.NewServer(api.APIMux(cfg))
	t.Cleanup(func() {
		srv.Close()
		if err := bg.Shutdown(context.Background()); err != nil {
			t.Errorf("draining background tasks: %v", err)
		}
	})

	return &TestEnv{
		Server:    srv,
		Store:     store,
		Processor: proc,
	}
}

// NewClient returns a client with its own cookie jar, that is its own
// session.
func (env *TestEnv) NewClient(t *testing.T) *Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &Client{
		url:  env.URL,
		http: &http.Client{Jar: jar},
	}
}

type Client struct {
	url  string
	http *http.Client
}

// Do sends body as JSON and decodes a successful response into out. It
// returns the status code.
func (c *Client) Do(t *testing.T, method string, path string, body interface{}, out interface{}) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, c.url+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := c.http.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode < 300 {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: cannot decode response: %v", method, path, err)
		}
	}

	return w.StatusCode
}

// Error sends the request and returns the status code and the error message.
func (c *Client) Error(t *testing.T, method string, path string, body interface{}) (int, string) {
	t.Helper()

	var b []byte
	if body != nil {
		var err error
		if b, err = json.Marshal(body); err != nil {
			t.Fatal(err)
		}
	}

	r, err := http.NewRequest(method, c.url+path, bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}

	w, err := c.http.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	var er struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&er); err != nil {
		t.Fatalf("%s %s: status %d without an error body: %v", method, path, w.StatusCode, err)
	}

	return w.StatusCode, er.Error
}

func (c *Client) Login(t *testing.T, email string, password string) {
	t.Helper()

	in := map[string]string{"email": email, "password": password}
	if code := c.Do(t, http.MethodPost, "/auth/login", in, nil); code != http.StatusOK {
		t.Fatalf("login as %s: status code %d", email, code)
	}
}

func (c *Client) AddItem(t *testing.T, productID string, qty int) {
	t.Helper()

	in := map[string]interface{}{"productId": productID, "quantity": qty}
	if code := c.Do(t, http.MethodPost, "/cart/items", in, nil); code != http.StatusOK {
		t.Fatalf("adding %s: status code %d", productID, code)
	}
}

func expectStatus(t *testing.T, what string, got int, exp int) {
	t.Helper()

	if got != exp {
		t.Fatalf("%s: expected status %d, got %d", what, exp, got)
	}
}
