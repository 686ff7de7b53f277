package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucpayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

// StripeGateway implementa o port de pagamento sobre o Stripe Checkout.
// O id da reserva viaja como metadata da sessão e do payment intent, e
// volta nos webhooks para correlação.
type StripeGateway struct {
	frontendURL   string
	webhookSecret string
}

func NewStripeGateway(cfg *config.Config) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey

	return &StripeGateway{
		frontendURL:   cfg.FrontendURL,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

func (g *StripeGateway) CreateCheckoutSession(
	ctx context.Context,
	res *models.Reservation,
) (*ucpayment.CheckoutSession, error) {

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(fmt.Sprintf("%s/pagamento-sucesso?reserva=%s", g.frontendURL, res.ID)),
		CancelURL:          stripe.String(fmt.Sprintf("%s/pagamento-cancelado?reserva=%s", g.frontendURL, res.ID)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyBRL)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(res.Service.Name),
					},
					// preço snapshot da reserva, em centavos
					UnitAmount: stripe.Int64(int64(math.Round(res.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		// metadata também no payment intent, senão o evento de falha
		// chega sem o id da reserva
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"reservation_id": res.ID},
		},
	}
	params.Context = ctx
	params.AddMetadata("reservation_id", res.ID)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	return &ucpayment.CheckoutSession{
		ID:  s.ID,
		URL: s.URL,
	}, nil
}

// VerifyAndParseEvent valida a assinatura sobre o corpo bruto — qualquer
// re-serialização antes daqui invalidaria o HMAC — e traduz o evento para o
// formato neutro do reconciliador.
func (g *StripeGateway) VerifyAndParseEvent(
	payload []byte,
	signature string,
) (ucpayment.Event, error) {

	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return ucpayment.Event{}, fmt.Errorf("%w: %v", ucpayment.ErrInvalidSignature, err)
	}

	out := ucpayment.Event{
		ID:   ev.ID,
		Type: ucpayment.EventIgnored,
	}

	switch string(ev.Type) {

	case "checkout.session.completed":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			// assinatura válida, corpo inesperado: o reconciliador descarta
			out.Type = ucpayment.EventCheckoutCompleted
			return out, nil
		}
		out.Type = ucpayment.EventCheckoutCompleted
		out.ReservationID = s.Metadata["reservation_id"]
		if s.PaymentIntent != nil {
			out.PaymentRef = s.PaymentIntent.ID
		}

	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			out.Type = ucpayment.EventCheckoutCompleted
			return out, nil
		}
		out.Type = ucpayment.EventCheckoutCompleted
		out.ReservationID = pi.Metadata["reservation_id"]
		out.PaymentRef = pi.ID

	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			out.Type = ucpayment.EventPaymentFailed
			return out, nil
		}
		out.Type = ucpayment.EventPaymentFailed
		out.ReservationID = pi.Metadata["reservation_id"]
	}

	return out, nil
}

// Compile-time check
var _ ucpayment.Gateway = (*StripeGateway)(nil)
