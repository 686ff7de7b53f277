package reservation

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

const maxCancelReasonLen = 500

func Cancel(r *models.Reservation, reason string, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	if len(reason) > maxCancelReasonLen {
		reason = reason[:maxCancelReasonLen]
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	r.CancelReason = reason
	return nil
}

// ConfirmPayment é idempotente: pagamento aprovado é terminal, uma segunda
// confirmação (webhook reentregue) não altera nada. Reserva cancelada
// devolve reservation_cancelled — o chamador registra e descarta.
func ConfirmPayment(r *models.Reservation, paymentRef string, now time.Time) error {
	if PaymentStatus(r.PaymentStatus) == PaymentApproved {
		return nil
	}

	if Status(r.Status) == StatusCancelled {
		return httperr.ErrBusiness("reservation_cancelled")
	}

	r.Status = string(StatusConfirmed)
	r.PaymentStatus = string(PaymentApproved)
	r.ConfirmedAt = &now
	r.PaymentRef = paymentRef
	return nil
}

// MarkPaymentFailed nunca rebaixa um pagamento aprovado — um evento de
// falha reentregue depois do sucesso é ignorado.
func MarkPaymentFailed(r *models.Reservation) error {
	if PaymentStatus(r.PaymentStatus) == PaymentApproved {
		return nil
	}

	r.PaymentStatus = string(PaymentFailed)
	return nil
}

func Finalize(r *models.Reservation, now time.Time) error {
	if err := CanFinalize(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusFinalized)
	r.FinalizedAt = &now
	return nil
}
