// Package checkout turns a cart into a paid order. Payment is simulated.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bindaas/storefront/core/auth"
	"github.com/bindaas/storefront/core/cart"
	"github.com/bindaas/storefront/random"
	"github.com/bindaas/storefront/simulate"
	"github.com/bindaas/storefront/validate"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const DefaultPaymentDelay = 2 * time.Second

// ErrDeclined is returned by a Processor that refused the payment.
var ErrDeclined = errors.New("payment declined")

type Shipping struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required"`
}

type Method string

const (
	Card Method = "card"
	UPI  Method = "upi"
)

type Payment struct {
	Method     Method `json:"method" validate:"required,oneof=card upi"`
	CardNumber string `json:"cardNumber" validate:"required_if=Method card"`
	ExpiryDate string `json:"expiryDate" validate:"required_if=Method card"`
	CVV        string `json:"cvv" validate:"required_if=Method card"`
	UPIID      string `json:"upiId" validate:"required_if=Method upi"`
}

type Status string

const Completed Status = "completed"

// Order is what gets charged. It only lives for the duration of Submit.
type Order struct {
	Reference string
	Items     []cart.Item
	Total     decimal.Decimal
	Customer  auth.Identity
	Shipping  Shipping
	Method    Method
	PlacedAt  time.Time
}

type Receipt struct {
	Reference     string          `json:"orderId"`
	Items         []cart.Item     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	ItemCount     int             `json:"itemCount"`
	Status        Status          `json:"status"`
	PaymentStatus Status          `json:"paymentStatus"`
	Method        Method          `json:"paymentMethod"`
	Shipping      Shipping        `json:"shippingAddress"`
	PlacedAt      time.Time       `json:"createdAt"`
}

// Processor charges an order.
type Processor interface {
	Charge(ctx context.Context, ord Order, pay Payment) error
}

// Simulated approves every payment after Delay.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Charge(ctx context.Context, ord Order, pay Payment) error {
	return simulate.Wait(ctx, s.Delay)
}

type Orchestrator struct {
	log  logrus.FieldLogger
	proc Processor
	now  func() time.Time
}

func New(log logrus.FieldLogger, proc Processor) *Orchestrator {
	return &Orchestrator{
		log:  log,
		proc: proc,
		now:  time.Now,
	}
}

// Submit places an order for the content of c on behalf of who and empties
// c once the payment went through. Callers make sure the cart is not empty
// and the customer is logged in. A failed payment leaves c untouched.
func (o *Orchestrator) Submit(ctx context.Context, c *cart.Cart, who auth.Identity, ship Shipping, pay Payment) (Receipt, error) {
	if err := validate.Check(ship); err != nil {
		return Receipt{}, err
	}
	if err := validate.Check(pay); err != nil {
		return Receipt{}, err
	}

	ref, err := random.Reference("ORD")
	if err != nil {
		return Receipt{}, fmt.Errorf("generating order reference: %w", err)
	}

	ord := Order{
		Reference: ref,
		Items:     c.Items(),
		Total:     c.Total(),
		Customer:  who,
		Shipping:  ship,
		Method:    pay.Method,
		PlacedAt:  o.now().UTC(),
	}

	log := o.log.WithFields(logrus.Fields{
		"order":   ord.Reference,
		"user_id": who.ID,
		"total":   ord.Total.String(),
		"method":  ord.Method,
	})

	log.Info("charging order")

	count := c.ItemCount()

	if err := o.proc.Charge(ctx, ord, pay); err != nil {
		log.WithError(err).Warn("payment failed")
		return Receipt{}, fmt.Errorf("charging order[%s]: %w", ord.Reference, err)
	}

	c.Clear()

	log.Info("order completed")

	return Receipt{
		Reference:     ord.Reference,
		Items:         ord.Items,
		Total:         ord.Total,
		ItemCount:     count,
		Status:        Completed,
		PaymentStatus: Completed,
		Method:        ord.Method,
		Shipping:      ord.Shipping,
		PlacedAt:      ord.PlacedAt,
	}, nil
}
