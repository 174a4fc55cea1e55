package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/handlers"
	"tenclub.in/app/internal/http/middleware"
)

// Deps carries the handler seams. Everything is built once in main and
// injected here; nothing is initialized at import time.
type Deps struct {
	Payments     handlers.PaymentService
	Availability handlers.AvailabilityChecker
	Trials       handlers.TrialService
	Feedback     handlers.FeedbackService
	Calls        handlers.CallService
}

func NewRouter(logger *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
	)

	pay := handlers.NewPaymentHandler(logger, d.Payments)
	avail := handlers.NewAvailabilityHandler(logger, d.Availability)
	trial := handlers.NewTrialRequestHandler(logger, d.Trials)
	fb := handlers.NewFeedbackHandler(logger, d.Feedback)
	call := handlers.NewScheduleCallHandler(logger, d.Calls)

	api := r.Group("/api")
	{
		api.POST("/phonepe/pay", pay.Pay)
		api.GET("/phonepe/checkStatus", pay.CheckStatus)
		api.POST("/phonepe/checkStatus", pay.CheckStatus)

		api.GET("/availability/check", avail.Check)

		api.POST("/feedback", fb.Create)
		api.POST("/schedule-call", call.Create)
		api.POST("/trial-request", trial.Create)
		api.GET("/trial-request", trial.Get)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
