package reservation

import (
	"context"
	"sync"
	"testing"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func seedCatalog(repo *fakeRepo) {
	repo.addShop(models.Barbershop{
		ID:       1,
		Name:     "Barbearia do Zé",
		Timezone: "America/Sao_Paulo",
		Active:   true,
	})
	repo.addService(models.Service{
		ID:           10,
		BarbershopID: 1,
		Name:         "Corte",
		DurationMin:  30,
		Price:        50,
		Active:       true,
	})
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		repo := newFakeRepo()
		seedCatalog(repo)

		uc := NewCreateReservation(repo, nil)

		res, err := uc.Execute(ctx, CreateReservationInput{
			UserID:       7,
			BarbershopID: 1,
			ServiceID:    10,
			Date:         "2026-03-10",
			Time:         "09:30",
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}

		if res.ID == "" {
			t.Error("id vazio")
		}
		if res.Status != string(domain.StatusPending) {
			t.Errorf("status = %s", res.Status)
		}
		if res.PaymentStatus != string(domain.PaymentPending) {
			t.Errorf("payment_status = %s", res.PaymentStatus)
		}
		if res.Price != 50 {
			t.Errorf("price = %v, snapshot do serviço esperado", res.Price)
		}
		if got := res.StartTime.Format("15:04"); got != "09:30" {
			t.Errorf("start = %s", got)
		}
	})

	t.Run("barbearia inativa", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addShop(models.Barbershop{ID: 1, Timezone: "America/Sao_Paulo", Active: false})

		uc := NewCreateReservation(repo, nil)

		_, err := uc.Execute(ctx, CreateReservationInput{
			UserID: 7, BarbershopID: 1, ServiceID: 10,
			Date: "2026-03-10", Time: "09:30",
		})
		if !httperr.IsBusiness(err, "barbershop_not_found") {
			t.Fatalf("err = %v, want barbershop_not_found", err)
		}
	})

	t.Run("serviço desconhecido", func(t *testing.T) {
		repo := newFakeRepo()
		seedCatalog(repo)

		uc := NewCreateReservation(repo, nil)

		_, err := uc.Execute(ctx, CreateReservationInput{
			UserID: 7, BarbershopID: 1, ServiceID: 999,
			Date: "2026-03-10", Time: "09:30",
		})
		if !httperr.IsBusiness(err, "service_not_found") {
			t.Fatalf("err = %v, want service_not_found", err)
		}
	})

	t.Run("data inválida", func(t *testing.T) {
		repo := newFakeRepo()
		seedCatalog(repo)

		uc := NewCreateReservation(repo, nil)

		_, err := uc.Execute(ctx, CreateReservationInput{
			UserID: 7, BarbershopID: 1, ServiceID: 10,
			Date: "10/03/2026", Time: "09:30",
		})
		if !httperr.IsBusiness(err, "invalid_date_or_time") {
			t.Fatalf("err = %v, want invalid_date_or_time", err)
		}
	})

	t.Run("slot ocupado devolve conflito", func(t *testing.T) {
		repo := newFakeRepo()
		seedCatalog(repo)

		uc := NewCreateReservation(repo, nil)

		in := CreateReservationInput{
			UserID: 7, BarbershopID: 1, ServiceID: 10,
			Date: "2026-03-10", Time: "09:30",
		}

		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("primeira reserva: %v", err)
		}

		in.UserID = 8
		_, err := uc.Execute(ctx, in)
		if !httperr.IsBusiness(err, "time_conflict") {
			t.Fatalf("err = %v, want time_conflict", err)
		}
	})

	t.Run("slot cancelado pode ser reaproveitado", func(t *testing.T) {
		repo := newFakeRepo()
		seedCatalog(repo)

		uc := NewCreateReservation(repo, nil)

		in := CreateReservationInput{
			UserID: 7, BarbershopID: 1, ServiceID: 10,
			Date: "2026-03-10", Time: "09:30",
		}

		first, err := uc.Execute(ctx, in)
		if err != nil {
			t.Fatalf("primeira reserva: %v", err)
		}

		stored := repo.reservations[first.ID]
		stored.Status = string(domain.StatusCancelled)

		in.UserID = 8
		if _, err := uc.Execute(ctx, in); err != nil {
			t.Fatalf("slot liberado por cancelamento: %v", err)
		}
	})
}

// N clientes disputando o mesmo horário: exatamente um vence, os demais
// recebem time_conflict.
func TestCreateReservationRace(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	uc := NewCreateReservation(repo, nil)

	const attempts = 50

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateReservationInput{
				UserID:       userID,
				BarbershopID: 1,
				ServiceID:    10,
				Date:         "2026-03-10",
				Time:         "10:00",
			})
			results <- err
		}(uint(i + 1))
	}

	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, "time_conflict"):
			conflicts++
		default:
			t.Errorf("erro inesperado: %v", err)
		}
	}

	if wins != 1 {
		t.Errorf("wins = %d, want 1", wins)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
}
