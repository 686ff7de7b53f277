package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	config     *config.Config
	gateway    ucPayment.Gateway
	checkoutUC *ucPayment.CreateCheckout
	simulateUC *ucPayment.SimulatePayment
	reconciler *ucPayment.Reconciler
	log        *zap.Logger
}

func NewPaymentHandler(
	cfg *config.Config,
	gateway ucPayment.Gateway,
	checkoutUC *ucPayment.CreateCheckout,
	simulateUC *ucPayment.SimulatePayment,
	reconciler *ucPayment.Reconciler,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		config:     cfg,
		gateway:    gateway,
		checkoutUC: checkoutUC,
		simulateUC: simulateUC,
		reconciler: reconciler,
		log:        log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckoutRequest struct {
	ReservationID string `json:"reservation_id" binding:"required"`
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *PaymentHandler) Checkout(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "reservation_id é obrigatório.")
		return
	}

	session, err := h.checkoutUC.Execute(c.Request.Context(), principal, req.ReservationID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}

// ======================================================
// WEBHOOK
// ======================================================

// O corpo cru é lido uma única vez e vai intacto para a verificação de
// assinatura. Depois da assinatura válida a resposta é sempre 200 — falha
// interna de conciliação não pode alimentar o retry do provedor.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "invalid_payload", "Corpo da requisição ilegível.")
		return
	}

	event, err := h.gateway.VerifyAndParseEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, ucPayment.ErrInvalidSignature) {
			h.log.Warn("webhook signature rejected", zap.Error(err))
			httperr.BadRequest(c, "invalid_signature", "Assinatura inválida.")
			return
		}
		httperr.BadRequest(c, "invalid_payload", "Evento inválido.")
		return
	}

	if err := h.reconciler.Handle(c.Request.Context(), event); err != nil {
		h.log.Error("webhook reconciliation failed",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// ======================================================
// SIMULATE (somente fora de produção)
// ======================================================

func (h *PaymentHandler) Simulate(c *gin.Context) {
	if h.config.IsProduction() {
		httperr.NotFound(c, "not_found", "Recurso não encontrado.")
		return
	}

	principal := middleware.PrincipalFromContext(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "reservation_id é obrigatório.")
		return
	}

	res, err := h.simulateUC.Execute(c.Request.Context(), principal, req.ReservationID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}
