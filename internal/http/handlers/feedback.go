package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/middleware"
	"tenclub.in/app/internal/modules/feedback"
	"tenclub.in/app/internal/shared/apperr"
)

type FeedbackService interface {
	Create(ctx context.Context, in feedback.CreateInput) (feedback.Feedback, error)
}

type FeedbackHandler struct {
	Logger *slog.Logger
	Svc    FeedbackService
}

func NewFeedbackHandler(logger *slog.Logger, svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Logger: logger, Svc: svc}
}

type feedbackInput struct {
	Name         string `json:"name" binding:"required,max=255"`
	Phone        string `json:"phone" binding:"required,min=5,max=32"`
	Feelings     string `json:"feelings" binding:"required"`
	Highlights   string `json:"highlights" binding:"required"`
	StayLocation string `json:"stay_location" binding:"required,max=255"`
}

// POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var in feedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, invalidInput(err, &in))
		return
	}

	_, err := h.Svc.Create(c.Request.Context(), feedback.CreateInput{
		Name:         in.Name,
		Phone:        in.Phone,
		Feelings:     in.Feelings,
		Highlights:   in.Highlights,
		StayLocation: in.StayLocation,
	})
	if err != nil {
		if errors.Is(err, feedback.ErrStoreUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr("Datastore is not configured."))
			return
		}
		middleware.Fail(c, apperr.WrapMsg("Failed to save feedback.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
