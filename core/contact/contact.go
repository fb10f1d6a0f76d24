// Package contact accepts messages from the contact form. Delivery is
// simulated: a message is logged and acknowledged with a ticket id.
package contact

import (
	"context"
	"time"

	"github.com/bindaas/storefront/simulate"
	"github.com/bindaas/storefront/validate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultDelay = 1500 * time.Millisecond

type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type Ticket struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type Service struct {
	log   logrus.FieldLogger
	delay time.Duration
	now   func() time.Time
}

func New(log logrus.FieldLogger, delay time.Duration) *Service {
	return &Service{
		log:   log,
		delay: delay,
		now:   time.Now,
	}
}

// Submit validates msg and hands it over after the configured delay.
func (s *Service) Submit(ctx context.Context, msg Message) (Ticket, error) {
	if err := validate.Check(msg); err != nil {
		return Ticket{}, err
	}

	if err := simulate.Wait(ctx, s.delay); err != nil {
		return Ticket{}, err
	}

	t := Ticket{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
	}

	s.log.WithFields(logrus.Fields{
		"ticket":  t.ID,
		"email":   msg.Email,
		"subject": msg.Subject,
	}).Info("contact message received")

	return t, nil
}
