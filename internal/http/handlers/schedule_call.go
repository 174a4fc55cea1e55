package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/middleware"
	"tenclub.in/app/internal/modules/calls"
	"tenclub.in/app/internal/shared/apperr"
)

type CallService interface {
	Create(ctx context.Context, in calls.CreateInput) (calls.ScheduledCall, error)
}

type ScheduleCallHandler struct {
	Logger *slog.Logger
	Svc    CallService
}

func NewScheduleCallHandler(logger *slog.Logger, svc CallService) *ScheduleCallHandler {
	return &ScheduleCallHandler{Logger: logger, Svc: svc}
}

type scheduleCallInput struct {
	Name          string `json:"name" binding:"required,max=255"`
	Phone         string `json:"phone" binding:"required,min=5,max=32"`
	Email         string `json:"email" binding:"omitempty,email,max=255"`
	ScheduledDate string `json:"scheduledDate" binding:"required,len=10"`
	ScheduledTime string `json:"scheduledTime" binding:"required,min=4,max=8"`
}

// POST /api/schedule-call
func (h *ScheduleCallHandler) Create(c *gin.Context) {
	var in scheduleCallInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, invalidInput(err, &in))
		return
	}

	row, err := h.Svc.Create(c.Request.Context(), calls.CreateInput{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
	})
	if err != nil {
		if errors.Is(err, calls.ErrStoreUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr("Datastore is not configured."))
			return
		}
		middleware.Fail(c, apperr.WrapMsg("Failed to schedule call.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}
