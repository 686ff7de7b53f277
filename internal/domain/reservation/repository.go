package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Service, error)

	// -------- Reservation (create / conflict) --------

	// CreateReservationIfFree verifica o conflito e insere na mesma
	// transação; no máximo um vencedor por (barbearia, serviço, horário).
	// Perdedores recebem httperr.ErrBusiness("time_conflict").
	CreateReservationIfFree(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Reservation (leitura / mutação) --------
	GetReservationByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// inícios das reservas não canceladas do dia, para a grade de slots
	ListReservedStarts(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]time.Time, error)

	ListReservationsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)

	ListReservationsForDay(
		ctx context.Context,
		barbershopID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Reservation, error)
}
