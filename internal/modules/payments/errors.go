package payments

import "errors"

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrMissingTransactionID = errors.New("missing transaction id")
)
