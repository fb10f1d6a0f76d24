package contact

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/validate"
)

func HandleSubmit(s *Service) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var msg Message
		if err := web.Decode(w, r, &msg); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		t, err := s.Submit(ctx, msg)
		if err != nil {
			if validate.IsError(err) {
				return weberr.Invalid(err)
			}
			return fmt.Errorf("submitting contact message: %w", err)
		}

		return web.Respond(ctx, w, t, http.StatusAccepted)
	}
}
