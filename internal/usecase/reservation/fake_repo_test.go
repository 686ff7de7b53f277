package reservation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo implementa domain.Repository em memória. O mutex reproduz a
// garantia transacional do Postgres em CreateReservationIfFree, então os
// testes de corrida valem.
type fakeRepo struct {
	mu sync.Mutex

	shops        map[uint]*models.Barbershop
	services     map[uint]*models.Service
	reservations map[string]*models.Reservation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:        make(map[uint]*models.Barbershop),
		services:     make(map[uint]*models.Service),
		reservations: make(map[string]*models.Reservation),
	}
}

func (f *fakeRepo) addShop(shop models.Barbershop) {
	f.shops[shop.ID] = &shop
}

func (f *fakeRepo) addService(svc models.Service) {
	f.services[svc.ID] = &svc
}

func (f *fakeRepo) addReservation(res models.Reservation) {
	if shop, ok := f.shops[res.BarbershopID]; ok {
		res.Barbershop = *shop
	}
	f.reservations[res.ID] = &res
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return nil, errNotFound
	}
	return shop, nil
}

func (f *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.BarbershopID != barbershopID || !svc.Active {
		return nil, errNotFound
	}
	return svc, nil
}

func (f *fakeRepo) ListServices(_ context.Context, barbershopID uint) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.BarbershopID == barbershopID && svc.Active {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateReservationIfFree(_ context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.reservations {
		if existing.BarbershopID == r.BarbershopID &&
			existing.ServiceID == r.ServiceID &&
			existing.StartTime.Equal(r.StartTime) &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	cp := *r
	if shop, ok := f.shops[r.BarbershopID]; ok {
		cp.Barbershop = *shop
	}
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeRepo) GetReservationByID(_ context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *res
	return &cp, nil
}

func (f *fakeRepo) UpdateReservation(_ context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.reservations[r.ID]; !ok {
		return errNotFound
	}
	cp := *r
	f.reservations[r.ID] = &cp
	return nil
}

func (f *fakeRepo) ListReservedStarts(
	_ context.Context,
	barbershopID, serviceID uint,
	dayStart, dayEnd time.Time,
) ([]time.Time, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var starts []time.Time
	for _, res := range f.reservations {
		if res.BarbershopID != barbershopID || res.ServiceID != serviceID {
			continue
		}
		if res.Status == string(domain.StatusCancelled) {
			continue
		}
		if res.StartTime.Before(dayStart) || !res.StartTime.Before(dayEnd) {
			continue
		}
		starts = append(starts, res.StartTime)
	}
	return starts, nil
}

func (f *fakeRepo) ListReservationsByUser(_ context.Context, userID uint) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Reservation
	for _, res := range f.reservations {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}

	// mesma ordenação do repositório real: start_time DESC
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeRepo) ListReservationsForDay(
	_ context.Context,
	barbershopID uint,
	dayStart, dayEnd time.Time,
) ([]models.Reservation, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Reservation
	for _, res := range f.reservations {
		if res.BarbershopID != barbershopID {
			continue
		}
		if res.StartTime.Before(dayStart) || !res.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *res)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
