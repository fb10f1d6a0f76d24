package api

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/bindaas/storefront/api/background"
	"github.com/bindaas/storefront/api/middleware"
	"github.com/bindaas/storefront/api/web"
	"github.com/bindaas/storefront/core/auth"
	"github.com/bindaas/storefront/core/cart"
	"github.com/bindaas/storefront/core/catalog"
	"github.com/bindaas/storefront/core/checkout"
	"github.com/bindaas/storefront/core/contact"
	"github.com/bindaas/storefront/core/testimonial"
	"github.com/bindaas/storefront/rate"
	"github.com/bindaas/storefront/storage"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin string
	Log        logrus.FieldLogger
	Session    *scs.SessionManager
	Catalog    *catalog.Catalog
	Background *background.Background
	Limiter    *rate.Limiter
	Processor  checkout.Processor
	Delay      Delays
}

// Delays are the simulated latencies of the remote calls the storefront
// stands in for.
type Delays struct {
	Login    time.Duration
	Register time.Duration
	Contact  time.Duration
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	store := storage.NewClientStore(cfg.Session)
	authen := auth.Authenticate(store)

	var limitAuth, limitContact web.Middleware
	if cfg.Limiter != nil {
		limitAuth = middleware.RateLimit(cfg.Limiter, "auth")
		limitContact = middleware.RateLimit(cfg.Limiter, "contact")
	}

	orch := checkout.New(cfg.Log, cfg.Processor)
	inbox := contact.New(cfg.Log, cfg.Delay.Contact)

	a.Handle(http.MethodGet, "/products", catalog.HandleList(cfg.Catalog))
	a.Handle(http.MethodGet, "/products/{id}", catalog.HandleShow(cfg.Catalog))
	a.Handle(http.MethodGet, "/categories", catalog.HandleListCategories(cfg.Catalog))
	a.Handle(http.MethodGet, "/testimonials", testimonial.HandleList())

	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(cfg.Session, store, cfg.Delay.Login), limitAuth)
	a.Handle(http.MethodPost, "/auth/register", auth.HandleSignup(cfg.Session, store, cfg.Delay.Register), limitAuth)
	a.Handle(http.MethodPost, "/auth/logout", auth.HandleLogout(cfg.Session, store))
	a.Handle(http.MethodGet, "/auth/me", auth.HandleShowCurrent(store))

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(store))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(store))
	a.Handle(http.MethodPost, "/cart/items", cart.HandleCreateItem(cfg.Catalog, store))
	a.Handle(http.MethodPut, "/cart/items/{product_id}", cart.HandleUpdateItem(store))
	a.Handle(http.MethodDelete, "/cart/items/{product_id}", cart.HandleDeleteItem(store))

	a.Handle(http.MethodPost, "/checkout", checkout.HandleSubmit(orch, store, cfg.Background, cfg.Log), authen)

	a.Handle(http.MethodPost, "/contact", contact.HandleSubmit(inbox), limitContact)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
