package reservation

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type FinalizeReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeReservation {
	return &FinalizeReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute fecha administrativamente uma reserva confirmada. Terminal.
func (uc *FinalizeReservation) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if !principal.IsPrivilegedFor(res.BarbershopID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	now := timezone.NowIn(res.Barbershop.Timezone)
	if err := domain.Finalize(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "reservation_finalized",
		Entity:       "reservation",
		EntityID:     res.ID,
	})

	return res, nil
}
