package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
)

// Panics turns a panicking handler into an internal error with the stack
// attached to the log fields.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = weberr.InternalError(
						fmt.Errorf("panic: %v", rec),
						weberr.WithFields(map[string]interface{}{"trace": string(debug.Stack())}),
					)
				}
			}()

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
