package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bindaas/storefront/api/background"
	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/core/auth"
	"github.com/bindaas/storefront/core/cart"
	"github.com/bindaas/storefront/core/claims"
	"github.com/bindaas/storefront/storage"
	"github.com/bindaas/storefront/validate"
	"github.com/sirupsen/logrus"
)

type Submission struct {
	Shipping Shipping `json:"shippingAddress"`
	Payment  Payment  `json:"payment"`
}

func HandleSubmit(o *Orchestrator, store storage.Store, bg *background.Background, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		var in Submission
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		c, err := cart.Load(ctx, store)
		if err != nil {
			return err
		}

		if c.Empty() {
			err := errors.New("no items to checkout")
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		who := auth.Identity{
			ID:       clm.UserID,
			Email:    clm.Email,
			Name:     clm.Name,
			LoggedIn: true,
		}

		rcpt, err := o.Submit(ctx, c, who, in.Shipping, in.Payment)
		switch {
		case validate.IsError(err):
			return weberr.Invalid(err)
		case errors.Is(err, ErrDeclined):
			return weberr.NewError(err, ErrDeclined.Error(), http.StatusPaymentRequired)
		case err != nil:
			return fmt.Errorf("submitting order for user[%s]: %w", clm.UserID, err)
		}

		if err := cart.Save(ctx, store, c); err != nil {
			return fmt.Errorf("the order[%s] was paid but the cart could not be emptied: %w", rcpt.Reference, err)
		}

		email := rcpt.Shipping.Email
		err = bg.Go("deliver-licenses", func() {
			log.WithFields(logrus.Fields{
				"order": rcpt.Reference,
				"email": email,
				"items": rcpt.ItemCount,
			}).Info("licenses dispatched")
		})
		if err != nil {
			log.WithError(err).WithField("order", rcpt.Reference).Warn("license delivery not scheduled")
		}

		return web.Respond(ctx, w, rcpt, http.StatusCreated)
	}
}
