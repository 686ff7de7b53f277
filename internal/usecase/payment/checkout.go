package payment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type CreateCheckout struct {
	repo    domain.Repository
	gateway Gateway
	audit   *audit.Dispatcher
}

func NewCreateCheckout(
	repo domain.Repository,
	gateway Gateway,
	audit *audit.Dispatcher,
) *CreateCheckout {
	return &CreateCheckout{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

func (uc *CreateCheckout) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID string,
) (*CheckoutSession, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if res.UserID != principal.UserID && !principal.IsPrivilegedFor(res.BarbershopID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	// nunca cobrar duas vezes
	if domain.PaymentStatus(res.PaymentStatus) == domain.PaymentApproved {
		return nil, httperr.ErrBusiness("already_paid")
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, res)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "payment_checkout_created",
		Entity:       "reservation",
		EntityID:     res.ID,
		Metadata:     map[string]any{"session_id": session.ID},
	})

	return session, nil
}
