package reservation

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusFinalized Status = "finalized"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentFailed   PaymentStatus = "failed"
)

// ===============================
// Validations
// ===============================

// CanCancel: cancelado e finalizado são terminais
func CanCancel(current Status) error {
	switch current {
	case StatusCancelled:
		return httperr.ErrBusiness("already_cancelled")
	case StatusFinalized:
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFinalize: só reservas confirmadas podem ser finalizadas
func CanFinalize(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}
