package calls

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStoreUnavailable = errors.New("call store not configured")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CreateInput struct {
	Name          string
	Phone         string
	Email         string
	ScheduledDate string
	ScheduledTime string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ScheduledCall, error) {
	if s.db == nil {
		return ScheduledCall{}, ErrStoreUnavailable
	}

	var email *string
	if e := strings.TrimSpace(in.Email); e != "" {
		email = &e
	}

	row := ScheduledCall{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         email,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		CreatedAt:     time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ScheduledCall{}, fmt.Errorf("create scheduled call: %w", err)
	}
	return row, nil
}
