package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/middleware"
	"tenclub.in/app/internal/modules/trials"
	"tenclub.in/app/internal/shared/apperr"
)

type TrialService interface {
	Create(ctx context.Context, in trials.CreateInput) (trials.TrialRequest, error)
	Get(ctx context.Context, requestID string) (trials.TrialRequest, error)
}

type TrialRequestHandler struct {
	Logger *slog.Logger
	Svc    TrialService
}

func NewTrialRequestHandler(logger *slog.Logger, svc TrialService) *TrialRequestHandler {
	return &TrialRequestHandler{Logger: logger, Svc: svc}
}

type trialRequestInput struct {
	Name            string `json:"name" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone           string `json:"phone" binding:"required,min=5,max=32"`
	Location        string `json:"location" binding:"required,max=255"`
	LocationSlug    string `json:"locationSlug" binding:"required,max=128"`
	PreferredDate   string `json:"preferredDate" binding:"required,len=10"`
	DurationNights  int    `json:"durationNights" binding:"omitempty,gt=0"`
	GuestCount      int    `json:"guestCount" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests" binding:"omitempty,max=2000"`
}

// POST /api/trial-request
func (h *TrialRequestHandler) Create(c *gin.Context) {
	var in trialRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, invalidInput(err, &in))
		return
	}

	row, err := h.Svc.Create(c.Request.Context(), trials.CreateInput{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Location:        in.Location,
		LocationSlug:    in.LocationSlug,
		PreferredDate:   in.PreferredDate,
		DurationNights:  in.DurationNights,
		GuestCount:      in.GuestCount,
		SpecialRequests: in.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, trials.ErrStoreUnavailable) {
			middleware.Fail(c, apperr.UnavailableErr("Datastore is not configured."))
			return
		}
		middleware.Fail(c, apperr.WrapMsg("Failed to save trial request.", err))
		return
	}

	message := "You've been added to the waitlist. We'll reach out as soon as dates open up."
	if row.RequestStatus == trials.StatusAvailable {
		message = "Your preferred dates are available. Our team will be in touch to confirm your trial stay."
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"requestId": row.ID,
		"status":    row.RequestStatus,
		"message":   message,
	})
}

// GET /api/trial-request?requestId=
func (h *TrialRequestHandler) Get(c *gin.Context) {
	requestID := c.Query("requestId")
	if requestID == "" {
		middleware.Fail(c, apperr.InvalidErr("missing required fields: requestId",
			map[string]string{"requestId": "This field is required."}))
		return
	}

	row, err := h.Svc.Get(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, trials.ErrNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Trial request not found."))
		case errors.Is(err, trials.ErrStoreUnavailable):
			middleware.Fail(c, apperr.UnavailableErr("Datastore is not configured."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}
