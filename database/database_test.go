package database

import (
	"strings"
	"testing"
)

func TestConfigURL(t *testing.T) {
	cfg := Config{
		User:       "shop",
		Password:   "p@ss",
		Host:       "db:5432",
		Name:       "bindaas",
		DisableTLS: true,
	}

	u := cfg.URL()
	for _, want := range []string{"postgres://shop:p%40ss@db:5432/bindaas", "sslmode=disable", "timezone=utc"} {
		if !strings.Contains(u, want) {
			t.Fatalf("expected %q in %q", want, u)
		}
	}

	cfg.DisableTLS = false
	if u := cfg.URL(); !strings.Contains(u, "sslmode=require") {
		t.Fatalf("expected sslmode=require in %q", u)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}
}
