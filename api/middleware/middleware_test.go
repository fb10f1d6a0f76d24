package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/rate"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func serve(t *testing.T, mw []web.Middleware, h web.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	if err := web.WrapMiddleware(mw, h)(r.Context(), w, r); err != nil {
		t.Fatalf("error escaped the middleware: %v", err)
	}
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body weberr.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body.Error
}

func TestErrors(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
		msg    string
	}{
		"not found": {
			err:    weberr.NotFound(errors.New("no product")),
			status: http.StatusNotFound,
			msg:    "the resource could not be found",
		},
		"invalid": {
			err:    weberr.Invalid(errors.New("email is required")),
			status: http.StatusBadRequest,
			msg:    "email is required",
		},
		"internal": {
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			msg:    "Internal Server Error",
		},
	}

	for name, tt := range tests {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			return tt.err
		}

		w := serve(t, []web.Middleware{Errors(quietLogger())}, h, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != tt.status {
			t.Fatalf("%s: expected status %d, got %d", name, tt.status, w.Code)
		}
		if got := decodeError(t, w); got != tt.msg {
			t.Fatalf("%s: expected message %q, got %q", name, tt.msg, got)
		}
	}
}

func TestPanics(t *testing.T) {
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		panic("boom")
	}

	mw := []web.Middleware{Errors(quietLogger()), Panics()}
	w := serve(t, mw, h, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		seen = ContextRequestID(ctx)
		return nil
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := serve(t, []web.Middleware{RequestID()}, h, r)
	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected a generated id echoed back, got %q and %q", seen, w.Header().Get(RequestIDHeader))
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	serve(t, []web.Middleware{RequestID()}, h, r)
	if len(seen) != DefaultRequestIDLengthLimit {
		t.Fatalf("expected the client id truncated to %d, got %d", DefaultRequestIDLengthLimit, len(seen))
	}

	if ContextRequestID(context.Background()) != "" {
		t.Fatal("expected no id outside a request")
	}
}

func TestLogger(t *testing.T) {
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, map[string]string{"ok": "yes"}, http.StatusTeapot)
	}

	w := serve(t, []web.Middleware{Logger(quietLogger())}, h, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("logger changed the status to %d", w.Code)
	}
}

func TestCors(t *testing.T) {
	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	w := serve(t, []web.Middleware{Cors("http://localhost:3000")}, h, httptest.NewRequest(http.MethodGet, "/", nil))

	exp := map[string]string{
		"Access-Control-Allow-Origin":      "http://localhost:3000",
		"Access-Control-Allow-Credentials": "true",
	}
	got := map[string]string{
		"Access-Control-Allow-Origin":      w.Header().Get("Access-Control-Allow-Origin"),
		"Access-Control-Allow-Credentials": w.Header().Get("Access-Control-Allow-Credentials"),
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("unexpected headers (-want +got):\n%s", diff)
	}
}

func TestRateLimit(t *testing.T) {
	lim := rate.NewLimiter(rate.Config{Burst: 1, Interval: time.Hour, Expiry: time.Hour})
	defer lim.Stop()

	h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
	mw := []web.Middleware{Errors(quietLogger()), RateLimit(lim, "auth")}

	request := func(addr string) int {
		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.RemoteAddr = addr
		return serve(t, mw, h, r).Code
	}

	if code := request("10.0.0.1:5000"); code != http.StatusNoContent {
		t.Fatalf("first request: expected 204, got %d", code)
	}
	if code := request("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Fatalf("same host, new port: expected 429, got %d", code)
	}
	if code := request("10.0.0.2:5000"); code != http.StatusNoContent {
		t.Fatalf("other host: expected 204, got %d", code)
	}

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.RemoteAddr = "10.0.0.1:5002"
	other := []web.Middleware{Errors(quietLogger()), RateLimit(lim, "contact")}
	if code := serve(t, other, h, r).Code; code != http.StatusNoContent {
		t.Fatalf("other scope, throttled host: expected 204, got %d", code)
	}
}
