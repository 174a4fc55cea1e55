package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tenclub.in/app/internal/http/middleware"
	"tenclub.in/app/internal/modules/availability"
	"tenclub.in/app/internal/shared/apperr"
)

type AvailabilityChecker interface {
	Check(ctx context.Context, q availability.Query) (availability.Result, error)
}

type AvailabilityHandler struct {
	Logger  *slog.Logger
	Checker AvailabilityChecker
}

func NewAvailabilityHandler(logger *slog.Logger, checker AvailabilityChecker) *AvailabilityHandler {
	return &AvailabilityHandler{Logger: logger, Checker: checker}
}

// GET /api/availability/check?startDate=YYYY-MM-DD&months=&offset=
// Pure proxy: the upstream body passes through unchanged.
func (h *AvailabilityHandler) Check(c *gin.Context) {
	startDate := c.Query("startDate")
	if startDate == "" {
		middleware.Fail(c, apperr.InvalidErr("missing required fields: startDate",
			map[string]string{"startDate": "This field is required."}))
		return
	}

	months, _ := strconv.Atoi(c.Query("months"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	res, err := h.Checker.Check(c.Request.Context(), availability.Query{
		StartDate: startDate,
		Months:    months,
		Offset:    offset,
	})
	if err != nil {
		middleware.Fail(c, apperr.WrapMsg("Failed to fetch availability.", err))
		return
	}

	c.Data(http.StatusOK, "application/json", res.Raw)
}
