package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// mapBusinessError traduz códigos de negócio para HTTP. Erro que não é
// de negócio vira 500 genérico; código desconhecido, 400.
func mapBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Code {

	case "barbershop_not_found":
		httperr.NotFound(c, be.Code, "Barbearia não encontrada.")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Serviço não encontrado.")
	case "reservation_not_found":
		httperr.NotFound(c, be.Code, "Reserva não encontrada.")

	case "not_owner":
		httperr.Forbidden(c, be.Code, "Esta reserva não é sua.")

	case "time_conflict":
		httperr.Conflict(c, be.Code, "Horário já reservado.")

	case "too_late_to_cancel":
		httperr.BadRequest(c, be.Code, "Cancelamento fora do prazo permitido.")
	case "already_cancelled":
		httperr.BadRequest(c, be.Code, "Reserva já cancelada.")
	case "already_paid":
		httperr.BadRequest(c, be.Code, "Pagamento já efetuado.")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Transição de estado inválida.")
	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Data ou hora inválida.")

	default:
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
	}
}
