package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/middleware"
	"tenclub.in/app/internal/http/validation"
	"tenclub.in/app/internal/modules/payments"
	"tenclub.in/app/internal/shared/apperr"
)

const (
	successPage = "/payment/success"
	pendingPage = "/payment/pending"
	failurePage = "/payment/failure"
)

type PaymentService interface {
	Initiate(ctx context.Context, in payments.InitiateInput) (payments.InitiateResult, error)
	Resolve(ctx context.Context, transactionID string) (payments.Resolution, error)
}

type PaymentHandler struct {
	Logger *slog.Logger
	Svc    PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{Logger: logger, Svc: svc}
}

type payInput struct {
	Amount       int64  `json:"amount" binding:"required,gt=0"`
	MobileNumber string `json:"mobileNumber" binding:"omitempty,min=10,max=15"`
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email,max=255"`
	Location     string `json:"location" binding:"omitempty,max=255"`
}

// POST /api/phonepe/pay
func (h *PaymentHandler) Pay(c *gin.Context) {
	var in payInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, invalidInput(err, &in))
		return
	}

	res, err := h.Svc.Initiate(c.Request.Context(), payments.InitiateInput{
		AmountRupees: in.Amount,
		MobileNumber: in.MobileNumber,
		Name:         in.Name,
		Email:        in.Email,
		Location:     in.Location,
	})
	if err != nil {
		if errors.Is(err, payments.ErrGatewayNotConfigured) {
			middleware.Fail(c, apperr.WrapMsg("Payment gateway is not configured.", err))
			return
		}
		middleware.Fail(c, apperr.WrapMsg("Payment initiation failed.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":           res.CheckoutURL,
		"transactionId": res.TransactionID,
		"amount":        res.AmountRupees,
	})
}

// CheckStatus serves both the gateway's server-to-server callback
// (POST, form-encoded) and the user's browser (GET). The query-string id is
// authoritative; the callback's transactionId form field is only a fallback
// when the query param is absent.
//
// GET|POST /api/phonepe/checkStatus?id=<transactionId>
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	id := c.Query("id")
	if id == "" && c.Request.Method == http.MethodPost {
		id = c.PostForm("transactionId")
	}
	if id == "" {
		c.Redirect(http.StatusFound, failurePage)
		return
	}

	res, err := h.Svc.Resolve(c.Request.Context(), id)
	if err != nil {
		// Degrades to the failure page either way; keep the detail in logs.
		h.Logger.WarnContext(c.Request.Context(), "payment resolution failed",
			"transaction_id", id, "err", err)
	}

	switch res.Outcome {
	case payments.OutcomeSuccess:
		c.Redirect(http.StatusFound, successPage+"?tid="+url.QueryEscape(id)+"&amount="+strconv.FormatInt(res.AmountRupees, 10))
	case payments.OutcomePending:
		c.Redirect(http.StatusFound, pendingPage+"?tid="+url.QueryEscape(id))
	default:
		c.Redirect(http.StatusFound, failurePage+"?tid="+url.QueryEscape(id))
	}
}

func invalidInput(err error, dst any) error {
	fields := validation.FromBindError(err, dst)
	return apperr.InvalidErr(validation.MissingFieldsMessage(fields), fields)
}
