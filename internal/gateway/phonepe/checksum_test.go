package phonepe

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"
)

func TestPaySignatureFormat(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte(`{"merchantId":"M1","amount":100}`))
	saltKey := "salt-key-test"

	got := PaySignature(payload, saltKey, "1")

	sum := sha256.Sum256([]byte(payload + "/pg/v1/pay" + saltKey))
	want := hex.EncodeToString(sum[:]) + "###1"
	if got != want {
		t.Fatalf("PaySignature = %q, want %q", got, want)
	}
}

func TestStatusSignatureFormat(t *testing.T) {
	saltKey := "salt-key-test"

	got := StatusSignature("MERCHANT1", "MT1700000000000AB12", saltKey, "2")

	sum := sha256.Sum256([]byte("/pg/v1/status/MERCHANT1/MT1700000000000AB12" + saltKey))
	want := hex.EncodeToString(sum[:]) + "###2"
	if got != want {
		t.Fatalf("StatusSignature = %q, want %q", got, want)
	}
}

func TestPaySignatureAvalanche(t *testing.T) {
	saltKey := "salt-key-test"
	a := base64.StdEncoding.EncodeToString([]byte(`{"merchantId":"M1","amount":100}`))
	b := base64.StdEncoding.EncodeToString([]byte(`{"merchantId":"M1","amount":101}`))

	sigA := PaySignature(a, saltKey, "1")
	sigB := PaySignature(b, saltKey, "1")
	if sigA == sigB {
		t.Fatal("one-byte payload change did not change the signature")
	}
}

func TestSignatureSaltIndexSuffix(t *testing.T) {
	sig := PaySignature("cGF5bG9hZA==", "k", "3")
	if !strings.HasSuffix(sig, "###3") {
		t.Fatalf("signature %q missing salt index suffix", sig)
	}
	// 64 hex chars + "###" + index
	if len(sig) != 64+3+1 {
		t.Fatalf("signature length = %d, want %d", len(sig), 64+3+1)
	}
}

func TestStatusPath(t *testing.T) {
	if got := StatusPath("M1", "MT42"); got != "/pg/v1/status/M1/MT42" {
		t.Fatalf("StatusPath = %q", got)
	}
}
