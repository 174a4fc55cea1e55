package phonepe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tenclub.in/app/internal/config"
)

const instrumentPayPage = "PAY_PAGE"

// Client is a thin REST client for the PhonePe payment gateway. Every call
// is attempted exactly once; the timeout comes from config, not from the
// http default.
type Client struct {
	cfg  config.PhonePeConfig
	http *http.Client
}

func NewClient(cfg config.PhonePeConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// CreatePayment registers a payment session and returns the hosted checkout
// URL. The returned link is single-use and scoped to the transaction id.
func (c *Client) CreatePayment(ctx context.Context, req PayRequest) (PayResult, error) {
	payload := payPayload{
		MerchantID:            c.cfg.MerchantID,
		MerchantTransactionID: req.MerchantTransactionID,
		MerchantUserID:        req.MerchantUserID,
		Amount:                req.AmountPaise,
		RedirectURL:           req.CallbackURL,
		RedirectMode:          "POST",
		CallbackURL:           req.CallbackURL,
		MobileNumber:          req.MobileNumber,
		PaymentInstrument:     paymentInstrument{Type: instrumentPayPage},
	}

	inner, err := json.Marshal(payload)
	if err != nil {
		return PayResult{}, fmt.Errorf("phonepe: marshal pay payload: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(inner)

	body, err := json.Marshal(payEnvelope{Request: b64})
	if err != nil {
		return PayResult{}, fmt.Errorf("phonepe: marshal pay envelope: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+payPath, bytes.NewReader(body))
	if err != nil {
		return PayResult{}, fmt.Errorf("phonepe: build pay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", PaySignature(b64, c.cfg.SaltKey, c.cfg.SaltIndex))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return PayResult{}, fmt.Errorf("phonepe: pay call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return PayResult{}, fmt.Errorf("phonepe: read pay response: %w", err)
	}

	var parsed payAPIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return PayResult{}, fmt.Errorf("phonepe: decode pay response (status %d): %w", resp.StatusCode, err)
	}
	if !parsed.Success {
		return PayResult{}, fmt.Errorf("phonepe: pay rejected: code=%s message=%q body=%s", parsed.Code, parsed.Message, raw)
	}

	url := parsed.Data.InstrumentResponse.RedirectInfo.URL
	if url == "" {
		return PayResult{}, fmt.Errorf("phonepe: pay response missing redirect url: %s", raw)
	}
	return PayResult{CheckoutURL: url}, nil
}

// CheckStatus fetches the gateway's current view of a transaction. Gateway
// rejection is not an error here: the (Success, Code) pair is the answer.
// Only transport and decode failures return an error.
func (c *Client) CheckStatus(ctx context.Context, transactionID string) (StatusResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+StatusPath(c.cfg.MerchantID, transactionID), nil)
	if err != nil {
		return StatusResult{}, fmt.Errorf("phonepe: build status request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", StatusSignature(c.cfg.MerchantID, transactionID, c.cfg.SaltKey, c.cfg.SaltIndex))
	httpReq.Header.Set("X-MERCHANT-ID", c.cfg.MerchantID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return StatusResult{}, fmt.Errorf("phonepe: status call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusResult{}, fmt.Errorf("phonepe: read status response: %w", err)
	}

	var parsed statusAPIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return StatusResult{}, fmt.Errorf("phonepe: decode status response (status %d): %w", resp.StatusCode, err)
	}

	return StatusResult{
		Success:     parsed.Success,
		Code:        parsed.Code,
		AmountPaise: parsed.Data.Amount,
		Raw:         raw,
	}, nil
}
