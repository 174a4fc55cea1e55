package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenclub.in/app/internal/config"
	"tenclub.in/app/internal/gateway/phonepe"
)

// Gateway is the seam to the PhonePe client; tests substitute it.
type Gateway interface {
	CreatePayment(ctx context.Context, req phonepe.PayRequest) (phonepe.PayResult, error)
	CheckStatus(ctx context.Context, transactionID string) (phonepe.StatusResult, error)
}

type Service struct {
	db            *gorm.DB
	gw            Gateway
	cfg           config.PhonePeConfig
	publicBaseURL string
	logger        *slog.Logger
}

func NewService(db *gorm.DB, gw Gateway, cfg config.PhonePeConfig, publicBaseURL string) *Service {
	return &Service{db: db, gw: gw, cfg: cfg, publicBaseURL: publicBaseURL, logger: slog.Default()}
}

func (s *Service) SetLogger(logger *slog.Logger) { s.logger = logger }

type InitiateInput struct {
	AmountRupees int64
	MobileNumber string
	Name         string
	Email        string
	Location     string
}

type InitiateResult struct {
	CheckoutURL   string
	TransactionID string
	AmountRupees  int64
}

// Initiate creates a payment session with the gateway and returns the hosted
// checkout link. Not idempotent: every call produces a fresh transaction id
// and a fresh chargeable session.
func (s *Service) Initiate(ctx context.Context, in InitiateInput) (InitiateResult, error) {
	if !s.cfg.Configured() {
		return InitiateResult{}, ErrGatewayNotConfigured
	}

	now := time.Now()
	txnID := NewTransactionID(now)
	muid := NewMerchantUserID(now)
	callbackURL := fmt.Sprintf("%s/api/phonepe/checkStatus?id=%s", s.publicBaseURL, txnID)
	amountPaise := in.AmountRupees * 100

	// Log the transaction before talking to the gateway so even a crashed
	// initiation leaves a row behind.
	s.recordInitiated(ctx, Transaction{
		MerchantTransactionID: txnID,
		MerchantUserID:        muid,
		AmountPaise:           amountPaise,
		MobileNumber:          in.MobileNumber,
		Status:                StatusInitiated,
		CreatedAt:             now,
		UpdatedAt:             now,
	})

	s.logger.InfoContext(ctx, "payment initiation",
		"transaction_id", txnID, "amount_rupees", in.AmountRupees, "name", in.Name, "email", in.Email, "location", in.Location)

	res, err := s.gw.CreatePayment(ctx, phonepe.PayRequest{
		MerchantTransactionID: txnID,
		MerchantUserID:        muid,
		AmountPaise:           amountPaise,
		MobileNumber:          in.MobileNumber,
		CallbackURL:           callbackURL,
	})
	if err != nil {
		s.markFailed(ctx, txnID, err)
		return InitiateResult{}, fmt.Errorf("create payment %s: %w", txnID, err)
	}

	return InitiateResult{
		CheckoutURL:   res.CheckoutURL,
		TransactionID: txnID,
		AmountRupees:  in.AmountRupees,
	}, nil
}

type Resolution struct {
	Outcome       Outcome
	TransactionID string
	AmountRupees  int64
}

// Resolve re-queries the gateway for the transaction's current state, records
// the answer, and maps it to an outcome. Safe to invoke repeatedly for the
// same id (callback plus manual refresh); each call re-queries and re-records.
// The returned Resolution is always usable; a non-nil error carries the
// transport detail behind a failure outcome.
func (s *Service) Resolve(ctx context.Context, transactionID string) (Resolution, error) {
	if transactionID == "" {
		return Resolution{Outcome: OutcomeFailure}, ErrMissingTransactionID
	}
	if !s.cfg.Configured() {
		return Resolution{Outcome: OutcomeFailure, TransactionID: transactionID}, ErrGatewayNotConfigured
	}

	st, err := s.gw.CheckStatus(ctx, transactionID)
	if err != nil {
		// Gateway unreachable is indistinguishable from gateway-rejected for
		// the end user; the transaction log keeps the distinction.
		s.markFailed(ctx, transactionID, err)
		return Resolution{Outcome: OutcomeFailure, TransactionID: transactionID},
			fmt.Errorf("check status %s: %w", transactionID, err)
	}

	outcome := OutcomeFor(st.Success, st.Code)
	s.recordResolution(ctx, transactionID, outcome, st)

	return Resolution{
		Outcome:       outcome,
		TransactionID: transactionID,
		AmountRupees:  st.AmountPaise / 100,
	}, nil
}

// --- transaction log ---

func (s *Service) recordInitiated(ctx context.Context, t Transaction) {
	if s.db == nil {
		s.logger.WarnContext(ctx, "transaction log disabled, initiation not persisted", "transaction_id", t.MerchantTransactionID)
		return
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		s.logger.ErrorContext(ctx, "failed to persist initiated transaction", "transaction_id", t.MerchantTransactionID, "err", err)
	}
}

func (s *Service) recordResolution(ctx context.Context, transactionID string, outcome Outcome, st phonepe.StatusResult) {
	if s.db == nil {
		s.logger.WarnContext(ctx, "transaction log disabled, resolution not persisted", "transaction_id", transactionID)
		return
	}

	now := time.Now()
	code := st.Code
	updates := map[string]any{
		"status":       outcome.rowStatus(),
		"gateway_code": &code,
		"raw_response": datatypes.JSON(st.Raw),
		"resolved_at":  &now,
		"updated_at":   now,
	}

	res := s.db.WithContext(ctx).Model(&Transaction{}).
		Where("merchant_transaction_id = ?", transactionID).
		Updates(updates)
	if res.Error != nil {
		s.logger.ErrorContext(ctx, "failed to record resolution", "transaction_id", transactionID, "err", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		return
	}

	// Callback for an id we never logged (initiated before the log existed,
	// or by another deployment). Record what the gateway told us anyway.
	t := Transaction{
		MerchantTransactionID: transactionID,
		AmountPaise:           st.AmountPaise,
		Status:                outcome.rowStatus(),
		GatewayCode:           &code,
		RawResponse:           datatypes.JSON(st.Raw),
		ResolvedAt:            &now,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		if isDup(err) {
			// A concurrent resolution inserted the row between our update and
			// create; fold this answer into it.
			s.db.WithContext(ctx).Model(&Transaction{}).
				Where("merchant_transaction_id = ?", transactionID).
				Updates(updates)
			return
		}
		s.logger.ErrorContext(ctx, "failed to record resolution for unknown transaction", "transaction_id", transactionID, "err", err)
	}
}

func isDup(err error) bool {
	var me *gomysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (s *Service) markFailed(ctx context.Context, transactionID string, cause error) {
	if s.db == nil {
		return
	}
	now := time.Now()
	err := s.db.WithContext(ctx).Model(&Transaction{}).
		Where("merchant_transaction_id = ?", transactionID).
		Updates(map[string]any{"status": StatusFailed, "updated_at": now}).Error
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mark transaction failed", "transaction_id", transactionID, "cause", cause, "err", err)
	}
}
