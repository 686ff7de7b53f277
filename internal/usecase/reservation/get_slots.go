package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetSlots struct {
	repo domain.Repository
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{repo: repo}
}

// Execute calcula os horários livres de um serviço num dia. Leitura pura:
// reflete sempre o estado commitado das reservas, sem cache.
func (uc *GetSlots) Execute(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
	dateStr string,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	svc, err := uc.repo.GetService(ctx, barbershopID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	reserved, err := uc.repo.ListReservedStarts(
		ctx,
		barbershopID,
		serviceID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(svc.DurationMin, reserved, loc), nil
}
