package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Reconciler transforma eventos verificados do provedor em transições da
// reserva. Depois que a assinatura passa, nada aqui devolve erro para o
// provedor: evento estranho, reserva inexistente ou cancelada viram log,
// nunca retry storm.
type Reconciler struct {
	repo  domain.Repository
	dedup EventDeduper
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReconciler(
	repo domain.Repository,
	dedup EventDeduper,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Reconciler {
	return &Reconciler{
		repo:  repo,
		dedup: dedup,
		audit: audit,
		log:   log,
	}
}

func (r *Reconciler) Handle(ctx context.Context, ev Event) error {

	if r.dedup != nil {
		seen, err := r.dedup.MarkProcessed(ctx, ev.ID)
		if err != nil {
			// dedup é atalho; sem ele a máquina de estados segura a reentrega
			r.log.Warn("event dedup unavailable", zap.Error(err))
		} else if seen {
			r.log.Debug("duplicate webhook event skipped", zap.String("event_id", ev.ID))
			return nil
		}
	}

	switch ev.Type {
	case EventCheckoutCompleted:
		return r.confirm(ctx, ev)
	case EventPaymentFailed:
		return r.markFailed(ctx, ev)
	default:
		return nil
	}
}

func (r *Reconciler) confirm(ctx context.Context, ev Event) error {
	if ev.ReservationID == "" {
		r.log.Warn("payment event without reservation metadata", zap.String("event_id", ev.ID))
		return nil
	}

	res, err := r.repo.GetReservationByID(ctx, ev.ReservationID)
	if err != nil {
		r.log.Warn("payment event for unknown reservation",
			zap.String("event_id", ev.ID),
			zap.String("reservation_id", ev.ReservationID),
		)
		return nil
	}

	now := timezone.NowIn(res.Barbershop.Timezone)

	if err := domain.ConfirmPayment(res, ev.PaymentRef, now); err != nil {
		if httperr.IsBusiness(err, "reservation_cancelled") {
			// dinheiro capturado para um horário devolvido — exceção de
			// negócio, resolve-se por conciliação manual
			r.log.Warn("payment captured for cancelled reservation",
				zap.String("reservation_id", res.ID),
				zap.String("payment_ref", ev.PaymentRef),
			)
			return nil
		}
		return err
	}

	if err := r.repo.UpdateReservation(ctx, res); err != nil {
		return err
	}

	r.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		Action:       "payment_confirmed",
		Entity:       "reservation",
		EntityID:     res.ID,
		Metadata:     map[string]any{"payment_ref": ev.PaymentRef},
	})

	r.log.Info("reservation confirmed by payment",
		zap.String("reservation_id", res.ID),
		zap.String("payment_ref", ev.PaymentRef),
	)

	return nil
}

func (r *Reconciler) markFailed(ctx context.Context, ev Event) error {
	if ev.ReservationID == "" {
		return nil
	}

	res, err := r.repo.GetReservationByID(ctx, ev.ReservationID)
	if err != nil {
		return nil
	}

	if err := domain.MarkPaymentFailed(res); err != nil {
		return err
	}

	if err := r.repo.UpdateReservation(ctx, res); err != nil {
		return err
	}

	r.audit.Dispatch(audit.Event{
		BarbershopID: res.BarbershopID,
		Action:       "payment_failed",
		Entity:       "reservation",
		EntityID:     res.ID,
	})

	return nil
}
