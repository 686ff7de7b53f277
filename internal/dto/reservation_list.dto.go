package dto

import "time"

type ReservationListDTO struct {
	ID            string    `json:"id"`
	StartTime     time.Time `json:"start_time"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ServiceName   string    `json:"service_name"`
	Price         float64   `json:"price"`
}
