package payments

import (
	"crypto/rand"
	"strconv"
	"time"
)

const txnAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTransactionID returns "MT" + millisecond timestamp + 4 random base-36
// characters. The format is fixed by the gateway integration; the suffix
// comes from crypto/rand and the primary key on payment_transactions backs
// it with a real uniqueness guarantee.
func NewTransactionID(now time.Time) string {
	var b [4]byte
	_, _ = rand.Read(b[:])

	suffix := make([]byte, len(b))
	for i, v := range b {
		suffix[i] = txnAlphabet[int(v)%len(txnAlphabet)]
	}
	return "MT" + strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}

// NewMerchantUserID synthesizes the per-initiation user id the gateway expects.
func NewMerchantUserID(now time.Time) string {
	return "MUID" + strconv.FormatInt(now.UnixMilli(), 10)
}
