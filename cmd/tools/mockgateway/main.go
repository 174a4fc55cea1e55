// mockgateway is a dev stand-in for the PhonePe gateway. It can print the
// X-VERIFY checksum for a payload (sign), serve fake pay/status endpoints
// with a configurable outcome (serve), or fire the form-encoded callback the
// real gateway sends after checkout (callback).
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"tenclub.in/app/internal/gateway/phonepe"
)

func main() {
	mode := flag.String("mode", "serve", "sign | serve | callback")

	merchantID := flag.String("merchant-id", os.Getenv("PHONEPE_MERCHANT_ID"), "Merchant id")
	saltKey := flag.String("salt-key", os.Getenv("PHONEPE_SALT_KEY"), "Salt key")
	saltIndex := flag.String("salt-index", envOr("PHONEPE_SALT_INDEX", "1"), "Salt index")

	payload := flag.String("payload", "", "Base64 pay payload to sign (sign mode)")
	txnID := flag.String("txn", "", "Merchant transaction id (sign/callback mode)")

	addr := flag.String("addr", ":9090", "Listen address (serve mode)")
	code := flag.String("code", "PAYMENT_SUCCESS", "Status code to answer with (serve mode)")
	amount := flag.Int64("amount", 100, "Amount in paise to answer with (serve mode)")

	callbackURL := flag.String("callback-url", "http://localhost:8080/api/phonepe/checkStatus", "checkStatus URL (callback mode)")

	flag.Parse()

	if *saltKey == "" {
		fmt.Fprintln(os.Stderr, "Error: salt key not provided and PHONEPE_SALT_KEY not set")
		os.Exit(1)
	}

	switch *mode {
	case "sign":
		if *payload != "" {
			fmt.Printf("X-VERIFY (pay): %s\n", phonepe.PaySignature(*payload, *saltKey, *saltIndex))
		}
		if *txnID != "" {
			fmt.Printf("X-VERIFY (status): %s\n", phonepe.StatusSignature(*merchantID, *txnID, *saltKey, *saltIndex))
		}
		if *payload == "" && *txnID == "" {
			fmt.Fprintln(os.Stderr, "Error: provide -payload and/or -txn")
			os.Exit(1)
		}

	case "serve":
		serve(*addr, *merchantID, *saltKey, *saltIndex, *code, *amount)

	case "callback":
		if *txnID == "" {
			fmt.Fprintln(os.Stderr, "Error: -txn required in callback mode")
			os.Exit(1)
		}
		fireCallback(*callbackURL, *txnID)

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

func serve(addr, merchantID, saltKey, saltIndex, code string, amountPaise int64) {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /pg/v1/pay", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var env struct {
			Request string `json:"request"`
		}
		if err := json.Unmarshal(body, &env); err != nil || env.Request == "" {
			http.Error(w, `{"success":false,"code":"BAD_REQUEST"}`, http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-VERIFY") != phonepe.PaySignature(env.Request, saltKey, saltIndex) {
			http.Error(w, `{"success":false,"code":"CHECKSUM_FAILED"}`, http.StatusUnauthorized)
			return
		}

		inner, _ := base64.StdEncoding.DecodeString(env.Request)
		var p struct {
			MerchantTransactionID string `json:"merchantTransactionId"`
		}
		_ = json.Unmarshal(inner, &p)
		log.Printf("pay: txn=%s", p.MerchantTransactionID)

		resp := map[string]any{
			"success": true,
			"code":    "PAYMENT_INITIATED",
			"data": map[string]any{
				"merchantTransactionId": p.MerchantTransactionID,
				"instrumentResponse": map[string]any{
					"type": "PAY_PAGE",
					"redirectInfo": map[string]any{
						"url":    "http://localhost" + addr + "/checkout/" + p.MerchantTransactionID,
						"method": "GET",
					},
				},
			},
		}
		writeJSON(w, resp)
	})

	mux.HandleFunc("GET /pg/v1/status/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/pg/v1/status/"), "/")
		if len(parts) != 2 {
			http.NotFound(w, r)
			return
		}
		mid, txn := parts[0], parts[1]
		if r.Header.Get("X-VERIFY") != phonepe.StatusSignature(mid, txn, saltKey, saltIndex) {
			http.Error(w, `{"success":false,"code":"CHECKSUM_FAILED"}`, http.StatusUnauthorized)
			return
		}
		log.Printf("status: txn=%s -> %s", txn, code)

		writeJSON(w, map[string]any{
			"success": code == "PAYMENT_SUCCESS",
			"code":    code,
			"data": map[string]any{
				"merchantTransactionId": txn,
				"amount":                amountPaise,
				"state":                 strings.TrimPrefix(code, "PAYMENT_"),
			},
		})
	})

	log.Printf("mock gateway listening on %s (merchant=%s, status answer=%s)", addr, merchantID, code)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func fireCallback(callbackURL, txnID string) {
	u := callbackURL
	if !strings.Contains(u, "id=") {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u = u + sep + "id=" + url.QueryEscape(txnID)
	}

	// don't follow the redirect; the Location header is the answer
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	form := url.Values{"transactionId": {txnID}}
	resp, err := client.PostForm(u, form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending callback: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %d\n", resp.StatusCode)
	fmt.Printf("Location: %s\n", resp.Header.Get("Location"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
