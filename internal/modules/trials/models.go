package trials

import "time"

const (
	StatusAvailable = "AVAILABLE"
	StatusWaitlist  = "WAITLIST"
)

// TrialRequest is a prospective member's request for a short trial stay,
// classified against live availability at creation time.
type TrialRequest struct {
	ID              string `gorm:"type:char(36);primaryKey"`
	Name            string `gorm:"type:varchar(255);not null"`
	Email           string `gorm:"type:varchar(255);not null"`
	Phone           string `gorm:"type:varchar(32);not null"`
	Location        string `gorm:"type:varchar(255);not null"`
	LocationSlug    string `gorm:"type:varchar(128);not null;index:ix_trial_requests_location_slug"`
	PreferredDate   string `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	DurationNights  int    `gorm:"not null"`
	GuestCount      int    `gorm:"not null"`
	SpecialRequests string `gorm:"type:text"`
	RequestStatus   string `gorm:"type:varchar(16);not null"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (TrialRequest) TableName() string { return "trial_requests" }
