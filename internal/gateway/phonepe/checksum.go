package phonepe

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	payPath        = "/pg/v1/pay"
	statusPathBase = "/pg/v1/status/"
)

// The gateway authenticates callers with a checksum header instead of a
// bearer token: X-VERIFY = hex(sha256(signed-string || saltKey)) + "###" + saltIndex.
// The signed string differs per endpoint: the pay call covers the base64
// payload plus the endpoint path, the status call covers the path alone.

func PaySignature(base64Payload, saltKey, saltIndex string) string {
	return checksum(base64Payload+payPath+saltKey, saltIndex)
}

func StatusSignature(merchantID, transactionID, saltKey, saltIndex string) string {
	return checksum(StatusPath(merchantID, transactionID)+saltKey, saltIndex)
}

func StatusPath(merchantID, transactionID string) string {
	return statusPathBase + merchantID + "/" + transactionID
}

func checksum(signed, saltIndex string) string {
	sum := sha256.Sum256([]byte(signed))
	return hex.EncodeToString(sum[:]) + "###" + saltIndex
}
