package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucReservation "github.com/BruksfildServices01/barber-booking/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC   *ucReservation.CreateReservation
	cancelUC   *ucReservation.CancelReservation
	finalizeUC *ucReservation.FinalizeReservation
	queries    *ucReservation.Queries
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	finalizeUC *ucReservation.FinalizeReservation,
	queries *ucReservation.Queries,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		finalizeUC: finalizeUC,
		queries:    queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(
		c.Request.Context(),
		ucReservation.CreateReservationInput{
			UserID:       principal.UserID,
			BarbershopID: req.BarbershopID,
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			Time:         req.Time,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// LIST (minhas reservas, mais recentes primeiro)
// ======================================================

func (h *ReservationHandler) ListMine(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	reservations, err := h.queries.ListMine(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// GET BY ID (dono ou privilegiado)
// ======================================================

func (h *ReservationHandler) GetByID(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	id := c.Param("id")

	res, err := h.queries.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	id := c.Param("id")

	var req CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), principal, id, req.Reason)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// FINALIZE (staff/admin)
// ======================================================

func (h *ReservationHandler) Finalize(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)
	id := c.Param("id")

	res, err := h.finalizeUC.Execute(c.Request.Context(), principal, id)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// AGENDA DO DIA (barbeiro/admin)
// ======================================================

// GET /api/reservations/day?barbershop_id=N&date=YYYY-MM-DD
func (h *ReservationHandler) ListForDay(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	shopIDStr := c.Query("barbershop_id")
	dateStr := c.Query("date")

	if shopIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbearia e data obrigatórias.")
		return
	}

	shopID, err := strconv.ParseUint(shopIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbearia inválida.")
		return
	}

	reservations, err := h.queries.ListForDay(
		c.Request.Context(),
		principal,
		uint(shopID),
		dateStr,
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.List(c, reservations)
}
