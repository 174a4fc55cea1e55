package payments

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusInitiated = "initiated"
	StatusSuccess   = "success"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Transaction is the durable log of a payment exchange, keyed by the
// merchant transaction id we hand the gateway. Written at initiation and
// updated on every status resolution, so a lost redirect or restart no
// longer loses the outcome.
type Transaction struct {
	MerchantTransactionID string  `gorm:"type:varchar(64);primaryKey"`
	MerchantUserID        string  `gorm:"type:varchar(64);not null"`
	AmountPaise           int64   `gorm:"not null"`
	MobileNumber          string  `gorm:"type:varchar(32)"`
	Status                string  `gorm:"type:varchar(32);not null;index:ix_payment_transactions_status"`
	GatewayCode           *string `gorm:"type:varchar(64)"`

	RawResponse datatypes.JSON `gorm:"type:json"` // last gateway status body, verbatim
	ResolvedAt  *time.Time     `gorm:"type:datetime(3)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Transaction) TableName() string { return "payment_transactions" }

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePending Outcome = "pending"
	OutcomeFailure Outcome = "failure"
)

// OutcomeFor maps the gateway's (success, code) pair to a terminal route.
// Anything that is not an explicit success or pending is a failure,
// including transport errors upstream of this call.
func OutcomeFor(success bool, code string) Outcome {
	switch {
	case success && code == "PAYMENT_SUCCESS":
		return OutcomeSuccess
	case code == "PAYMENT_PENDING":
		return OutcomePending
	default:
		return OutcomeFailure
	}
}

func (o Outcome) rowStatus() string {
	switch o {
	case OutcomeSuccess:
		return StatusSuccess
	case OutcomePending:
		return StatusPending
	default:
		return StatusFailed
	}
}
