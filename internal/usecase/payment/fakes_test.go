package payment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo: só os métodos de reserva importam aqui; catálogo é stub.
type fakeRepo struct {
	reservations map[string]*models.Reservation
	updates      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reservations: make(map[string]*models.Reservation)}
}

func (f *fakeRepo) add(res models.Reservation) {
	f.reservations[res.ID] = &res
}

func (f *fakeRepo) GetBarbershopByID(context.Context, uint) (*models.Barbershop, error) {
	return nil, errNotFound
}

func (f *fakeRepo) GetService(context.Context, uint, uint) (*models.Service, error) {
	return nil, errNotFound
}

func (f *fakeRepo) ListServices(context.Context, uint) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeRepo) CreateReservationIfFree(context.Context, *models.Reservation) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetReservationByID(_ context.Context, id string) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *res
	return &cp, nil
}

func (f *fakeRepo) UpdateReservation(_ context.Context, r *models.Reservation) error {
	if _, ok := f.reservations[r.ID]; !ok {
		return errNotFound
	}
	cp := *r
	f.reservations[r.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeRepo) ListReservedStarts(context.Context, uint, uint, time.Time, time.Time) ([]time.Time, error) {
	return nil, nil
}

func (f *fakeRepo) ListReservationsByUser(context.Context, uint) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeRepo) ListReservationsForDay(context.Context, uint, time.Time, time.Time) ([]models.Reservation, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeGateway devolve uma sessão fixa e registra a última reserva cobrada.
type fakeGateway struct {
	lastReservationID string
	err               error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, res *models.Reservation) (*CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastReservationID = res.ID
	return &CheckoutSession{ID: "cs_test_123", URL: "https://checkout.test/cs_test_123"}, nil
}

func (g *fakeGateway) VerifyAndParseEvent([]byte, string) (Event, error) {
	return Event{}, errors.New("not implemented")
}

var _ Gateway = (*fakeGateway)(nil)

// fakeDeduper: mapa em memória com a mesma semântica do SETNX.
type fakeDeduper struct {
	seen map[string]bool
	err  error
}

func newFakeDeduper() *fakeDeduper {
	return &fakeDeduper{seen: make(map[string]bool)}
}

func (d *fakeDeduper) MarkProcessed(_ context.Context, eventID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if d.seen[eventID] {
		return true, nil
	}
	d.seen[eventID] = true
	return false, nil
}

var _ EventDeduper = (*fakeDeduper)(nil)
