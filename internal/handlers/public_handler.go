package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucReservation "github.com/BruksfildServices01/barber-booking/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	getSlots *ucReservation.GetSlots
}

func NewPublicHandler(db *gorm.DB, getSlots *ucReservation.GetSlots) *PublicHandler {
	return &PublicHandler{
		db:       db,
		getSlots: getSlots,
	}
}

////////////////////////////////////////////////////////
// BARBEARIAS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbershops(c *gin.Context) {
	var shops []models.Barbershop
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&shops).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	httpresp.List(c, shops)
}

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbearia inválida.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("id = ? AND active = true", id).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	httpresp.OK(c, shop)
}

////////////////////////////////////////////////////////
// SERVIÇOS (catálogo, somente leitura)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbearia inválida.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("id = ? AND active = true", id).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

// GET /api/barbershops/:id/slots?date=YYYY-MM-DD&service_id=N
func (h *PublicHandler) GetSlots(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbearia inválida.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		uint(shopID),
		uint(serviceID),
		dateStr,
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
