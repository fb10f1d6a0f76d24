package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
	"github.com/bindaas/storefront/core/catalog"
	"github.com/bindaas/storefront/storage"
	"github.com/bindaas/storefront/validate"
)

type ItemNew struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"max=999"`
}

type ItemUp struct {
	Quantity *int `json:"quantity" validate:"required,max=999"`
}

func HandleShow(store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c, err := Load(ctx, store)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleDelete(store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := Delete(ctx, store); err != nil {
			return err
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleCreateItem(cat *catalog.Catalog, store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Invalid(err)
		}

		p, err := cat.Fetch(in.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return err
		}

		c, err := Load(ctx, store)
		if err != nil {
			return err
		}

		c.AddItem(p, in.Quantity)

		if err := Save(ctx, store, c); err != nil {
			return err
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleUpdateItem(store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		productID := web.Param(r, "product_id")

		var in ItemUp
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.Invalid(err)
		}

		c, err := Load(ctx, store)
		if err != nil {
			return err
		}

		// Zero or less removes the line, which is a no-op for a product that
		// is not in the cart.
		if *in.Quantity > 0 && !c.Contains(productID) {
			return weberr.NotFound(fmt.Errorf("product[%s] is not in the cart", productID))
		}

		c.UpdateQuantity(productID, *in.Quantity)

		if err := Save(ctx, store, c); err != nil {
			return err
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}

func HandleDeleteItem(store storage.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c, err := Load(ctx, store)
		if err != nil {
			return err
		}

		c.RemoveItem(web.Param(r, "product_id"))

		if err := Save(ctx, store, c); err != nil {
			return err
		}

		return web.Respond(ctx, w, c, http.StatusOK)
	}
}
