package payments

import (
	"regexp"
	"testing"
	"time"
)

var txnIDPattern = regexp.MustCompile(`^MT\d+[A-Z0-9]{4}$`)

func TestNewTransactionIDFormat(t *testing.T) {
	now := time.Now()
	for i := 0; i < 100; i++ {
		id := NewTransactionID(now)
		if !txnIDPattern.MatchString(id) {
			t.Fatalf("transaction id %q does not match %s", id, txnIDPattern)
		}
	}
}

func TestNewTransactionIDEmbedsTimestamp(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := NewTransactionID(now)
	want := "MT1700000000000"
	if id[:len(want)] != want {
		t.Fatalf("id %q does not start with %q", id, want)
	}
	if len(id) != len(want)+4 {
		t.Fatalf("id %q has wrong suffix length", id)
	}
}

func TestNewMerchantUserID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := NewMerchantUserID(now); got != "MUID1700000000000" {
		t.Fatalf("NewMerchantUserID = %q", got)
	}
}
