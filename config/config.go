// Package config holds the settings of the storefront server. Every field
// can be set from the environment with the BINDAAS_ prefix or from flags.
package config

import (
	"time"

	"github.com/bindaas/storefront/database"
	"github.com/bindaas/storefront/rate"
	"github.com/bindaas/storefront/storage/mongostore"
	"github.com/bindaas/storefront/storage/redisstore"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	Web struct {
		Address         string        `conf:"default:0.0.0.0:8000"`
		ReadTimeout     time.Duration `conf:"default:5s"`
		WriteTimeout    time.Duration `conf:"default:10s"`
		IdleTimeout     time.Duration `conf:"default:120s"`
		ShutdownTimeout time.Duration `conf:"default:20s"`
	}
	Cors struct {
		Origin string `conf:"default:http://localhost:3000"`
	}
	Session struct {
		CookieName string        `conf:"default:bindaas_session"`
		Lifetime   time.Duration `conf:"default:168h"`
		Secure     bool          `conf:"default:false"`
		// Cleanup is how often expired sessions are swept from storage.
		Cleanup time.Duration `conf:"default:5m"`
	}
	Storage struct {
		Backend string `conf:"default:memory,help:one of memory redis postgres mongo"`
		Prefix  string `conf:"default:bindaas:"`
	}
	DB    database.Config
	Redis redisstore.Config
	Mongo mongostore.Config
	Delay struct {
		Login    time.Duration `conf:"default:1s"`
		Register time.Duration `conf:"default:1s"`
		Payment  time.Duration `conf:"default:2s"`
		Contact  time.Duration `conf:"default:1500ms"`
	}
	Rate rate.Config
}
