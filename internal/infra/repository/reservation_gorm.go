package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *ReservationGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ReservationGormRepository) ListServices(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

// CreateReservationIfFree roda check + insert numa transação com lock das
// linhas ativas do slot. O índice único parcial pega a corrida em que duas
// transações não enxergam linha nenhuma para travar.
func (r *ReservationGormRepository) CreateReservationIfFree(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barbershop_id = ? AND service_id = ? AND start_time = ? AND status <> ?",
				res.BarbershopID,
				res.ServiceID,
				res.StartTime,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(res).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}

	return err
}

// --------------------------------------------------
// Reservation (leitura / mutação)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Preload("Service").
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) ListReservedStarts(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]time.Time, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("start_time").
		Where(
			"barbershop_id = ? AND service_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			barbershopID, serviceID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	starts := make([]time.Time, 0, len(reservations))
	for _, res := range reservations {
		starts = append(starts, res.StartTime)
	}

	return starts, nil
}

func (r *ReservationGormRepository) ListReservationsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *ReservationGormRepository) ListReservationsForDay(
	ctx context.Context,
	barbershopID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barbershop_id = ? AND start_time >= ? AND start_time < ?",
			barbershopID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
