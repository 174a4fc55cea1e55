package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStoreUnavailable = errors.New("feedback store not configured")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CreateInput struct {
	Name         string
	Phone        string
	Feelings     string
	Highlights   string
	StayLocation string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Feedback, error) {
	if s.db == nil {
		return Feedback{}, ErrStoreUnavailable
	}

	row := Feedback{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Phone:        in.Phone,
		Feelings:     in.Feelings,
		Highlights:   in.Highlights,
		StayLocation: in.StayLocation,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	return row, nil
}
