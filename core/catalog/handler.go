package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/api/weberr"
)

func HandleList(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()

		by, err := ParseSort(q.Get("sort"))
		if err != nil {
			return weberr.Invalid(err)
		}

		page, err := web.QueryInt(r, "page", 1)
		if err != nil {
			return weberr.Invalid(err)
		}

		limit, err := web.QueryInt(r, "limit", DefaultLimit)
		if err != nil {
			return weberr.Invalid(err)
		}

		found := cat.Search(q.Get("search"), q.Get("category"), by)

		return web.Respond(ctx, w, Paginate(found, page, limit), http.StatusOK)
	}
}

func HandleShow(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		p, err := cat.Fetch(web.Param(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return err
		}

		return web.Respond(ctx, w, p, http.StatusOK)
	}
}

func HandleListCategories(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, cat.Categories(), http.StatusOK)
	}
}
