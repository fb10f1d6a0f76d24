package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/rate"
)

// RateLimit throttles requests per remote address. Routes sharing a scope
// share a budget; different scopes never drain each other.
func RateLimit(lim *rate.Limiter, scope string) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !lim.Check(scope + "|" + host) {
				return weberr.TooManyRequests(
					fmt.Errorf("too many requests from %s", host),
					weberr.WithFields(map[string]interface{}{"remote": host, "scope": scope}),
				)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
