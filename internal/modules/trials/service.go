package trials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tenclub.in/app/internal/mailer"
	"tenclub.in/app/internal/modules/availability"
)

// Checker is the availability seam; tests substitute it.
type Checker interface {
	Check(ctx context.Context, q availability.Query) (availability.Result, error)
}

type Service struct {
	db      *gorm.DB
	checker Checker
	mail     mailer.Service // optional; nil disables confirmation emails
	from     string
	fromName string
	logger   *slog.Logger
}

func NewService(db *gorm.DB, checker Checker) *Service {
	return &Service{db: db, checker: checker, logger: slog.Default()}
}

func (s *Service) SetLogger(logger *slog.Logger) { s.logger = logger }

func (s *Service) SetMailer(m mailer.Service, from, fromName string) {
	s.mail = m
	s.from = from
	s.fromName = fromName
}

type CreateInput struct {
	Name            string
	Email           string
	Phone           string
	Location        string
	LocationSlug    string
	PreferredDate   string
	DurationNights  int
	GuestCount      int
	SpecialRequests string
}

// Create classifies the request against live availability and stores it.
// The availability call is synchronous and best-effort: a failed or negative
// answer both land on the waitlist.
func (s *Service) Create(ctx context.Context, in CreateInput) (TrialRequest, error) {
	if s.db == nil {
		return TrialRequest{}, ErrStoreUnavailable
	}

	status := StatusWaitlist
	res, err := s.checker.Check(ctx, availability.Query{StartDate: in.PreferredDate})
	if err != nil {
		s.logger.WarnContext(ctx, "availability check failed, waitlisting", "preferred_date", in.PreferredDate, "err", err)
	} else if res.Available {
		status = StatusAvailable
	}

	nights := in.DurationNights
	if nights <= 0 {
		nights = 1
	}

	now := time.Now()
	row := TrialRequest{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Location:        in.Location,
		LocationSlug:    in.LocationSlug,
		PreferredDate:   in.PreferredDate,
		DurationNights:  nights,
		GuestCount:      in.GuestCount,
		SpecialRequests: in.SpecialRequests,
		RequestStatus:   status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return TrialRequest{}, fmt.Errorf("create trial request: %w", err)
	}

	s.sendConfirmation(ctx, row)
	return row, nil
}

func (s *Service) Get(ctx context.Context, requestID string) (TrialRequest, error) {
	if s.db == nil {
		return TrialRequest{}, ErrStoreUnavailable
	}

	var row TrialRequest
	err := s.db.WithContext(ctx).First(&row, "id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TrialRequest{}, ErrNotFound
	}
	if err != nil {
		return TrialRequest{}, fmt.Errorf("get trial request %s: %w", requestID, err)
	}
	return row, nil
}

// sendConfirmation is best effort; email failure never fails the request.
func (s *Service) sendConfirmation(ctx context.Context, row TrialRequest) {
	if s.mail == nil {
		return
	}

	subject := "Your trial stay request at " + row.Location
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your trial stay request for %s starting %s (%d night(s), %d guest(s)).\n",
		row.Name, row.Location, row.PreferredDate, row.DurationNights, row.GuestCount)
	if row.RequestStatus == StatusAvailable {
		body += "\nYour dates are available. Our team will reach out shortly to confirm the booking.\n"
	} else {
		body += "\nYour dates are currently waitlisted. We will contact you as soon as a spot opens up.\n"
	}

	err := s.mail.Send(ctx, mailer.Email{
		From:     s.from,
		FromName: s.fromName,
		To:       []string{row.Email},
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "trial confirmation email failed", "request_id", row.ID, "err", err)
	}
}
