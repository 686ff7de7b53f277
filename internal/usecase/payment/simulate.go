package payment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// SimulatePayment confirma uma reserva sem passar pelo provedor. Caminho de
// desenvolvimento; o handler recusa em produção.
type SimulatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSimulatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SimulatePayment {
	return &SimulatePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SimulatePayment) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if res.UserID != principal.UserID && !principal.IsPrivilegedFor(res.BarbershopID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	now := timezone.NowIn(res.Barbershop.Timezone)

	if err := domain.ConfirmPayment(res, "pi_simulated", now); err != nil {
		// diferente do webhook, aqui o chamador é interativo: erro vira 400
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "payment_confirmed",
		Entity:       "reservation",
		EntityID:     res.ID,
		Metadata:     map[string]any{"simulated": true},
	})

	return res, nil
}
