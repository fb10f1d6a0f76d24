package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bindaas/storefront/storage"
)

// StorageKey is where a client's cart lives in its store.
const StorageKey = "bindaas_cart"

// Load reads the cart from store. A missing record is an empty cart.
func Load(ctx context.Context, store storage.Store) (*Cart, error) {
	b, err := store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return &c, nil
}

// Save writes c to store. An empty cart removes the record.
func Save(ctx context.Context, store storage.Store, c *Cart) error {
	if c.Empty() {
		return Delete(ctx, store)
	}

	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}

	if err := store.Set(ctx, StorageKey, b); err != nil {
		return fmt.Errorf("writing cart: %w", err)
	}
	return nil
}

func Delete(ctx context.Context, store storage.Store) error {
	if err := store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}
