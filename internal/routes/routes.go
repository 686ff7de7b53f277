package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/payment"
	"github.com/BruksfildServices01/barber-booking/internal/redisdb"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
	ucReservation "github.com/BruksfildServices01/barber-booking/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	eventDeduper := redisdb.NewEventDeduper(rdb)
	gateway := payment.NewStripeGateway(cfg)

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		cfg.CancelCutoffMinutes,
	)

	finalizeReservationUC := ucReservation.NewFinalizeReservation(
		reservationRepo,
		auditDispatcher,
	)

	getSlotsUC := ucReservation.NewGetSlots(reservationRepo)
	reservationQueries := ucReservation.NewQueries(reservationRepo)

	// ======================================================
	// 🧠 USE CASES — PAGAMENTOS
	// ======================================================
	checkoutUC := ucPayment.NewCreateCheckout(
		reservationRepo,
		gateway,
		auditDispatcher,
	)

	simulateUC := ucPayment.NewSimulatePayment(
		reservationRepo,
		auditDispatcher,
	)

	reconciler := ucPayment.NewReconciler(
		reservationRepo,
		eventDeduper,
		auditDispatcher,
		log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getSlotsUC)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		finalizeReservationUC,
		reservationQueries,
	)

	paymentHandler := handlers.NewPaymentHandler(
		cfg,
		gateway,
		checkoutUC,
		simulateUC,
		reconciler,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		public := api.Group("/barbershops")
		public.Use(middleware.RateLimit(rdb, cfg.RateLimitPerMin))
		{
			public.GET("", publicHandler.ListBarbershops)
			public.GET("/:id", publicHandler.GetBarbershop)
			public.GET("/:id/services", publicHandler.ListServices)
			public.GET("/:id/slots", publicHandler.GetSlots)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-barbershop", authHandler.RegisterBarbershop)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 💳 WEBHOOK (sem auth — validado por assinatura)
		// ------------------------------
		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations/mine", reservationHandler.ListMine)
			secured.GET("/reservations/day", reservationHandler.ListForDay)
			secured.GET("/reservations/:id", reservationHandler.GetByID)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/reservations/:id/finalize", reservationHandler.Finalize)

			// ------------------------------
			// PAGAMENTOS
			// ------------------------------
			secured.POST("/payments/checkout", paymentHandler.Checkout)
			secured.POST("/payments/simulate", paymentHandler.Simulate)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
