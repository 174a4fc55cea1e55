package handlers_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tenclub.in/app/internal/config"
	"tenclub.in/app/internal/gateway/phonepe"
	apphttp "tenclub.in/app/internal/http"
	"tenclub.in/app/internal/modules/payments"
)

// fakeGateway serves the pay and status endpoints the way the hosted gateway
// does, so the full stack (router, handlers, service, signed client) can be
// exercised against it.
func fakeGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /pg/v1/pay", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-VERIFY") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"success":true,"code":"PAYMENT_INITIATED","data":{"instrumentResponse":{"type":"PAY_PAGE","redirectInfo":{"url":"https://pay.example/checkout","method":"GET"}}}}`)
	})
	mux.HandleFunc("GET /pg/v1/status/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-VERIFY") == "" || r.Header.Get("X-MERCHANT-ID") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"success":true,"code":"PAYMENT_SUCCESS","data":{"amount":100,"state":"COMPLETED"}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestPaymentFlowEndToEnd drives a pay followed by its status callback through
// the real router, service, and HTTP client, and checks the transaction log.
func TestPaymentFlowEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gw := fakeGateway(t)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&payments.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.PhonePeConfig{
		MerchantID: "M10CLUB",
		SaltKey:    "salt-key",
		SaltIndex:  "1",
		BaseURL:    gw.URL,
		Timeout:    5 * time.Second,
	}
	svc := payments.NewService(db, phonepe.NewClient(cfg), cfg, "https://tenclub.in")
	svc.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ts := newTestServer()
	ts.router = apphttp.NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), apphttp.Deps{
		Payments:     svc,
		Availability: ts.availability,
		Trials:       ts.trials,
		Feedback:     ts.feedback,
		Calls:        ts.calls,
	})

	w := ts.postJSON(t, "/api/phonepe/pay", gin.H{
		"amount": 1, "name": "Asha", "email": "asha@example.com", "mobileNumber": "9999999999",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("pay status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["url"] != "https://pay.example/checkout" {
		t.Errorf("url = %v", body["url"])
	}
	txnID, _ := body["transactionId"].(string)
	if !regexp.MustCompile(`^MT\d+[A-Z0-9]{4}$`).MatchString(txnID) {
		t.Fatalf("transactionId = %q", txnID)
	}

	w = ts.get("/api/phonepe/checkStatus?id=" + txnID)
	if w.Code != http.StatusFound {
		t.Fatalf("checkStatus status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/payment/success?tid="+txnID+"&amount=1" {
		t.Errorf("Location = %q", loc)
	}

	var row payments.Transaction
	if err := db.First(&row, "merchant_transaction_id = ?", txnID).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if row.Status != payments.StatusSuccess {
		t.Errorf("status = %q, want %q", row.Status, payments.StatusSuccess)
	}
	if row.GatewayCode == nil || *row.GatewayCode != "PAYMENT_SUCCESS" {
		t.Errorf("gateway code = %v", row.GatewayCode)
	}
	if row.ResolvedAt == nil {
		t.Error("resolved_at not set")
	}
}
