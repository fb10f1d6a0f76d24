package checkout

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/bindaas/storefront/core/auth"
	"github.com/bindaas/storefront/core/cart"
	"github.com/bindaas/storefront/core/catalog"
	"github.com/bindaas/storefront/validate"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type recorder struct {
	err    error
	orders []Order
}

func (r *recorder) Charge(ctx context.Context, ord Order, pay Payment) error {
	r.orders = append(r.orders, ord)
	return r.err
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var (
	customer = auth.Identity{ID: "user_1", Email: "a@b.com", Name: "a", LoggedIn: true}

	shipping = Shipping{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "a@b.com",
		Phone:     "9876543210",
		Address:   "12 MG Road",
		City:      "Pune",
		State:     "MH",
		Pincode:   "411001",
	}

	card = Payment{Method: Card, CardNumber: "4242424242424242", ExpiryDate: "12/30", CVV: "123"}
)

func filledCart() *cart.Cart {
	var c cart.Cart
	c.AddItem(catalog.Product{ID: "vps-starter", Name: "VPS Starter Plan", Price: decimal.NewFromInt(1200), Monthly: true}, 2)
	c.AddItem(catalog.Product{ID: "windows-11-home", Name: "Windows 11 Home", Price: decimal.NewFromInt(7500)}, 1)
	return &c
}

func TestSubmit(t *testing.T) {
	proc := &recorder{}
	o := New(quietLogger(), proc)
	o.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	c := filledCart()
	items := c.Items()

	rcpt, err := o.Submit(context.Background(), c, customer, shipping, card)
	if err != nil {
		t.Fatal(err)
	}

	if !c.Empty() {
		t.Fatal("expected the cart to be cleared")
	}

	if !regexp.MustCompile(`^ORD-[0-9A-Z]{8}$`).MatchString(rcpt.Reference) {
		t.Fatalf("malformed reference %q", rcpt.Reference)
	}
	if !rcpt.Total.Equal(decimal.NewFromInt(9900)) {
		t.Fatalf("expected total 9900, got %s", rcpt.Total)
	}
	if rcpt.ItemCount != 3 || rcpt.Status != Completed || rcpt.PaymentStatus != Completed {
		t.Fatalf("unexpected receipt: %+v", rcpt)
	}
	if diff := cmp.Diff(items, rcpt.Items); diff != "" {
		t.Fatalf("receipt items differ from the cart (-want +got):\n%s", diff)
	}

	if len(proc.orders) != 1 {
		t.Fatalf("expected one charge, got %d", len(proc.orders))
	}
	ord := proc.orders[0]
	if ord.Customer != customer || ord.Reference != rcpt.Reference || ord.Method != Card {
		t.Fatalf("unexpected order: %+v", ord)
	}
	if !ord.PlacedAt.Equal(rcpt.PlacedAt) {
		t.Fatalf("order and receipt disagree on the time: %v vs %v", ord.PlacedAt, rcpt.PlacedAt)
	}
}

func TestSubmitUPI(t *testing.T) {
	o := New(quietLogger(), &recorder{})

	rcpt, err := o.Submit(context.Background(), filledCart(), customer, shipping, Payment{Method: UPI, UPIID: "asha@upi"})
	if err != nil {
		t.Fatal(err)
	}
	if rcpt.Method != UPI {
		t.Fatalf("expected upi, got %s", rcpt.Method)
	}
}

func TestSubmitValidation(t *testing.T) {
	noCity := shipping
	noCity.City = ""

	badEmail := shipping
	badEmail.Email = "not-an-email"

	tests := map[string]struct {
		ship Shipping
		pay  Payment
	}{
		"missing city":        {noCity, card},
		"bad email":           {badEmail, card},
		"no method":           {shipping, Payment{}},
		"unknown method":      {shipping, Payment{Method: "cash"}},
		"card without number": {shipping, Payment{Method: Card, ExpiryDate: "12/30", CVV: "123"}},
		"upi without id":      {shipping, Payment{Method: UPI}},
	}

	for name, tt := range tests {
		proc := &recorder{}
		o := New(quietLogger(), proc)
		c := filledCart()

		_, err := o.Submit(context.Background(), c, customer, tt.ship, tt.pay)
		if !validate.IsError(err) {
			t.Fatalf("%s: expected a validation error, got %v", name, err)
		}
		if len(proc.orders) != 0 {
			t.Fatalf("%s: invalid order was charged", name)
		}
		if c.Len() != 2 {
			t.Fatalf("%s: cart changed on invalid input", name)
		}
	}
}

func TestSubmitDeclined(t *testing.T) {
	o := New(quietLogger(), &recorder{err: ErrDeclined})
	c := filledCart()

	_, err := o.Submit(context.Background(), c, customer, shipping, card)
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if c.Len() != 2 || c.ItemCount() != 3 {
		t.Fatal("cart changed after a failed payment")
	}
}

func TestSimulated(t *testing.T) {
	o := New(quietLogger(), Simulated{Delay: 20 * time.Millisecond})

	start := time.Now()
	if _, err := o.Submit(context.Background(), filledCart(), customer, shipping, card); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("payment returned before the simulated delay")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := filledCart()
	o = New(quietLogger(), Simulated{Delay: time.Hour})
	if _, err := o.Submit(ctx, c, customer, shipping, card); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if c.Empty() {
		t.Fatal("cancelled payment emptied the cart")
	}
}
