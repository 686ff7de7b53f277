package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelReservation struct {
	repo          domain.Repository
	audit         *audit.Dispatcher
	cutoffMinutes int
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cutoffMinutes int,
) *CancelReservation {
	if cutoffMinutes <= 0 {
		cutoffMinutes = 60
	}
	return &CancelReservation{
		repo:          repo,
		audit:         audit,
		cutoffMinutes: cutoffMinutes,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID string,
	reason string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	privileged := principal.IsPrivilegedFor(res.BarbershopID)

	if !privileged && res.UserID != principal.UserID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	now := timezone.NowIn(res.Barbershop.Timezone)

	// antecedência mínima — não vale para staff/admin
	if !privileged {
		cutoff := time.Duration(uc.cutoffMinutes) * time.Minute
		if res.StartTime.Sub(now) < cutoff {
			return nil, httperr.ErrBusiness("too_late_to_cancel")
		}
	}

	if err := domain.Cancel(res, reason, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "reservation_cancelled",
		Entity:       "reservation",
		EntityID:     res.ID,
		Metadata:     map[string]any{"reason": res.CancelReason},
	})

	return res, nil
}
