package payment

import (
	"context"
	"testing"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func pendingReservation(id string) models.Reservation {
	return models.Reservation{
		ID:            id,
		UserID:        7,
		BarbershopID:  1,
		Status:        string(domain.StatusPending),
		PaymentStatus: string(domain.PaymentPending),
		Barbershop:    models.Barbershop{ID: 1, Timezone: "America/Sao_Paulo"},
	}
}

func newTestReconciler(repo *fakeRepo, dedup EventDeduper) *Reconciler {
	return NewReconciler(repo, dedup, nil, zap.NewNop())
}

func TestReconcilerConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("checkout completado confirma a reserva", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(pendingReservation("r1"))

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{
			ID:            "evt_1",
			Type:          EventCheckoutCompleted,
			ReservationID: "r1",
			PaymentRef:    "pi_abc",
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}

		res := repo.reservations["r1"]
		if res.Status != string(domain.StatusConfirmed) {
			t.Errorf("status = %s", res.Status)
		}
		if res.PaymentStatus != string(domain.PaymentApproved) {
			t.Errorf("payment_status = %s", res.PaymentStatus)
		}
		if res.PaymentRef != "pi_abc" {
			t.Errorf("payment_ref = %s", res.PaymentRef)
		}
	})

	t.Run("reentrega via máquina de estados não duplica", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(pendingReservation("r1"))

		rec := newTestReconciler(repo, nil) // sem dedup: estado segura

		ev := Event{ID: "evt_1", Type: EventCheckoutCompleted, ReservationID: "r1", PaymentRef: "pi_abc"}

		if err := rec.Handle(ctx, ev); err != nil {
			t.Fatalf("primeira entrega: %v", err)
		}

		ev.ID = "evt_2"
		ev.PaymentRef = "pi_outro"
		if err := rec.Handle(ctx, ev); err != nil {
			t.Fatalf("reentrega: %v", err)
		}

		if repo.reservations["r1"].PaymentRef != "pi_abc" {
			t.Error("reentrega sobrescreveu o payment_ref original")
		}
	})

	t.Run("dedup por event id corta a reentrega antes do repo", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(pendingReservation("r1"))

		rec := newTestReconciler(repo, newFakeDeduper())

		ev := Event{ID: "evt_1", Type: EventCheckoutCompleted, ReservationID: "r1", PaymentRef: "pi_abc"}

		if err := rec.Handle(ctx, ev); err != nil {
			t.Fatalf("primeira entrega: %v", err)
		}
		updatesAfterFirst := repo.updates

		if err := rec.Handle(ctx, ev); err != nil {
			t.Fatalf("reentrega: %v", err)
		}
		if repo.updates != updatesAfterFirst {
			t.Error("evento duplicado chegou ao repositório")
		}
	})

	t.Run("dedup indisponível não derruba o evento", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(pendingReservation("r1"))

		dedup := newFakeDeduper()
		dedup.err = context.DeadlineExceeded

		rec := newTestReconciler(repo, dedup)

		err := rec.Handle(ctx, Event{
			ID: "evt_1", Type: EventCheckoutCompleted, ReservationID: "r1", PaymentRef: "pi_abc",
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if repo.reservations["r1"].Status != string(domain.StatusConfirmed) {
			t.Error("evento deveria seguir sem o dedup")
		}
	})

	t.Run("reserva desconhecida vira log, não erro", func(t *testing.T) {
		repo := newFakeRepo()

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{
			ID: "evt_1", Type: EventCheckoutCompleted, ReservationID: "ghost", PaymentRef: "pi_abc",
		})
		if err != nil {
			t.Fatalf("err = %v, evento órfão não pode provocar retry", err)
		}
	})

	t.Run("evento sem metadata de reserva é descartado", func(t *testing.T) {
		repo := newFakeRepo()

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{ID: "evt_1", Type: EventCheckoutCompleted})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("pagamento de reserva cancelada não reconfirma", func(t *testing.T) {
		repo := newFakeRepo()
		res := pendingReservation("r1")
		res.Status = string(domain.StatusCancelled)
		repo.add(res)

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{
			ID: "evt_1", Type: EventCheckoutCompleted, ReservationID: "r1", PaymentRef: "pi_abc",
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}

		stored := repo.reservations["r1"]
		if stored.Status != string(domain.StatusCancelled) {
			t.Error("reserva cancelada foi reaberta pelo webhook")
		}
		if stored.PaymentStatus == string(domain.PaymentApproved) {
			t.Error("pagamento aprovado em reserva cancelada")
		}
	})
}

func TestReconcilerPaymentFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("falha marca payment_status", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(pendingReservation("r1"))

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{ID: "evt_1", Type: EventPaymentFailed, ReservationID: "r1"})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if repo.reservations["r1"].PaymentStatus != string(domain.PaymentFailed) {
			t.Error("payment_status não marcado como failed")
		}
	})

	t.Run("falha atrasada não rebaixa aprovado", func(t *testing.T) {
		repo := newFakeRepo()
		res := pendingReservation("r1")
		res.Status = string(domain.StatusConfirmed)
		res.PaymentStatus = string(domain.PaymentApproved)
		repo.add(res)

		rec := newTestReconciler(repo, nil)

		err := rec.Handle(ctx, Event{ID: "evt_1", Type: EventPaymentFailed, ReservationID: "r1"})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if repo.reservations["r1"].PaymentStatus != string(domain.PaymentApproved) {
			t.Error("evento de falha atrasado rebaixou pagamento aprovado")
		}
	})
}

func TestReconcilerIgnoredEvent(t *testing.T) {
	repo := newFakeRepo()
	repo.add(pendingReservation("r1"))

	rec := newTestReconciler(repo, nil)

	err := rec.Handle(context.Background(), Event{ID: "evt_1", Type: EventIgnored})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if repo.updates != 0 {
		t.Error("evento ignorado tocou o repositório")
	}
}
