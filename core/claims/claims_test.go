package claims

import (
	"context"
	"testing"
)

func TestClaims(t *testing.T) {
	ctx := context.Background()

	if _, err := Get(ctx); err == nil {
		t.Fatal("expected an error without claims")
	}

	ctx = Set(ctx, Claims{UserID: "user_1", Email: "a@b.com", Name: "a"})

	c, err := Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if c.UserID != "user_1" || c.Email != "a@b.com" || c.Name != "a" {
		t.Fatalf("unexpected claims: %+v", c)
	}
}
