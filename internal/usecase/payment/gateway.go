package payment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ErrInvalidSignature: payload adulterado ou segredo errado. Único caso em
// que o webhook responde 400 para o provedor.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type EventType string

const (
	EventCheckoutCompleted EventType = "checkout_completed"
	EventPaymentFailed     EventType = "payment_failed"
	EventIgnored           EventType = "ignored"
)

// Event é o evento do provedor já normalizado — o reconciliador não conhece
// o formato do Stripe.
type Event struct {
	ID            string
	Type          EventType
	ReservationID string
	PaymentRef    string
}

type Gateway interface {
	CreateCheckoutSession(
		ctx context.Context,
		res *models.Reservation,
	) (*CheckoutSession, error)

	// VerifyAndParseEvent valida a assinatura sobre o corpo bruto da
	// requisição (byte a byte, sem re-serializar) e normaliza o evento.
	VerifyAndParseEvent(
		payload []byte,
		signature string,
	) (Event, error)
}

// EventDeduper é o atalho de idempotência por id de evento. Opcional: a
// máquina de estados já tolera reentrega.
type EventDeduper interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}
