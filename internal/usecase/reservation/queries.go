package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

// ListMine: reservas do próprio usuário, mais recentes primeiro.
func (q *Queries) ListMine(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {
	return q.repo.ListReservationsByUser(ctx, userID)
}

// GetByID: dono ou privilegiado.
func (q *Queries) GetByID(
	ctx context.Context,
	principal domain.Principal,
	reservationID string,
) (*models.Reservation, error) {

	res, err := q.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if res.UserID != principal.UserID && !principal.IsPrivilegedFor(res.BarbershopID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return res, nil
}

// ListForDay: agenda do dia da barbearia, visão do barbeiro/admin.
func (q *Queries) ListForDay(
	ctx context.Context,
	principal domain.Principal,
	barbershopID uint,
	dateStr string,
) ([]dto.ReservationListDTO, error) {

	if !principal.IsPrivilegedFor(barbershopID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	shop, err := q.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	reservations, err := q.repo.ListReservationsForDay(ctx, barbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:            res.ID,
			StartTime:     res.StartTime,
			Status:        res.Status,
			PaymentStatus: res.PaymentStatus,
			ServiceName:   res.Service.Name,
			Price:         res.Price,
		})
	}

	return out, nil
}
