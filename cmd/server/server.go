package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/bindaas/storefront/api"
	"github.com/bindaas/storefront/api/background"
	"github.com/bindaas/storefront/config"
	"github.com/bindaas/storefront/core/catalog"
	"github.com/bindaas/storefront/core/checkout"
	"github.com/bindaas/storefront/database"
	"github.com/bindaas/storefront/rate"
	"github.com/bindaas/storefront/storage"
	"github.com/bindaas/storefront/storage/mongostore"
	"github.com/bindaas/storefront/storage/pgstore"
	"github.com/bindaas/storefront/storage/redisstore"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	const prefix = "BINDAAS"
	var cfg config.Config
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	logger.Infof("config:\n%s", out)

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}
	defer closer.Close()

	logger.WithField("backend", cfg.Storage.Backend).Info("storage ready")

	sessions := storage.NewSessionStore(store, cfg.Storage.Prefix)
	sessions.StartCleanup(cfg.Session.Cleanup, logger)
	defer sessions.StopCleanup()

	sessionManager := scs.New()
	sessionManager.Store = sessions
	sessionManager.Lifetime = cfg.Session.Lifetime
	sessionManager.Cookie.Name = cfg.Session.CookieName
	sessionManager.Cookie.Secure = cfg.Session.Secure
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.WithError(err).Error("session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}

	bg := background.New(logger)

	lim := rate.NewLimiter(cfg.Rate)
	defer lim.Stop()

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		Session:    sessionManager,
		Catalog:    catalog.Default(),
		Background: bg,
		Limiter:    lim,
		Processor:  checkout.Simulated{Delay: cfg.Delay.Payment},
		Delay: api.Delays{
			Login:    cfg.Delay.Login,
			Register: cfg.Delay.Register,
			Contact:  cfg.Delay.Contact,
		},
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}

		if err := bg.Shutdown(ctx); err != nil {
			return fmt.Errorf("could not complete all background tasks: %w", err)
		}
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// openStore connects the backend named in the configuration. The returned
// closer releases its connections.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return storage.NewMemory(), nopCloser, nil

	case config.BackendRedis:
		st, err := redisstore.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil

	case config.BackendPostgres:
		db, err := database.Open(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := database.StatusCheck(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pgstore.New(db), db, nil

	case config.BackendMongo:
		st, client, err := mongostore.Open(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		return st, closerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		}), nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
