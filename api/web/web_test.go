package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	type payload struct {
		Quantity int `json:"quantity"`
	}

	tests := map[string]struct {
		body string
		ok   bool
	}{
		"valid":         {`{"quantity": 2}`, true},
		"empty":         {``, false},
		"unknown field": {`{"qty": 2}`, false},
		"trailing":      {`{"quantity": 2} {}`, false},
		"malformed":     {`{"quantity":`, false},
	}

	for name, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
		var p payload
		err := Decode(httptest.NewRecorder(), r, &p)
		if (err == nil) != tt.ok {
			t.Fatalf("%s: unexpected result %v", name, err)
		}
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&limit=x", nil)

	if n, err := QueryInt(r, "page", 1); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d, %v", n, err)
	}
	if n, err := QueryInt(r, "missing", 7); err != nil || n != 7 {
		t.Fatalf("expected the default, got %d, %v", n, err)
	}
	if _, err := QueryInt(r, "limit", 1); err == nil {
		t.Fatal("expected an error for a non-integer")
	}
}

func TestWrapMiddlewareOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(h Handler) Handler {
			return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				order = append(order, name)
				return h(ctx, w, r)
			}
		}
	}

	h := WrapMiddleware([]Middleware{mark("outer"), nil, mark("inner")}, func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		order = append(order, "handler")
		return nil
	})

	if err := h(context.Background(), httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); err != nil {
		t.Fatal(err)
	}
	if strings.Join(order, ",") != "outer,inner,handler" {
		t.Fatalf("unexpected order %v", order)
	}
}
