package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func main() {
	var (
		url     = flag.String("url", "", "webhook endpoint url (defaults to http://localhost<HTTP_ADDR>/webhook/shopify/order-create)")
		secret  = flag.String("secret", "", "SHOPIFY_WEBHOOK_SECRET")
		payload = flag.String("payload", "", "path to json payload file (defaults to a generated sample order)")
	)
	flag.Parse()

	if *url == "" {
		httpAddr := os.Getenv("HTTP_ADDR")
		if httpAddr == "" {
			httpAddr = ":8080"
		}
		if len(httpAddr) > 0 && httpAddr[0] == ':' {
			*url = "http://localhost" + httpAddr + "/webhook/shopify/order-create"
		} else {
			*url = "http://localhost:8080/webhook/shopify/order-create"
		}
	}

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "missing -secret")
		os.Exit(2)
	}

	var b []byte
	var err error
	if *payload != "" {
		b, err = os.ReadFile(*payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read payload: %v\n", err)
			os.Exit(2)
		}
	} else {
		b, err = sampleOrder()
		if err != nil {
			fmt.Fprintf(os.Stderr, "build payload: %v\n", err)
			os.Exit(2)
		}
	}

	sig := sign(b, *secret)

	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(b))
	if err != nil {
		fmt.Fprintf(os.Stderr, "new request: %v\n", err)
		os.Exit(2)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Topic", "orders/create")
	req.Header.Set("X-Shopify-Hmac-Sha256", sig)

	c := &http.Client{Timeout: 10 * time.Second}
	resp, err := c.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "post: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("status=%d\n%s\n", resp.StatusCode, string(body))
}

// sampleOrder builds a minimal orders/create payload with consistent totals.
func sampleOrder() ([]byte, error) {
	unit := decimal.RequireFromString("10.00")
	qty := 2

	order := map[string]any{
		"id":           450789469,
		"order_number": 1001,
		"email":        "jon@example.com",
		"total_price":  unit.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2),
		"currency":     "USD",
		"line_items": []map[string]any{
			{
				"sku":      "ABC",
				"quantity": qty,
				"price":    unit.StringFixed(2),
				"title":    "Sample Product",
			},
		},
		"billing_address": map[string]any{
			"first_name":    "Jon",
			"last_name":     "Snow",
			"address1":      "123 Wall Street",
			"city":          "Winterfell",
			"province_code": "ON",
			"zip":           "K2P 1L4",
			"country_code":  "CA",
			"phone":         "555-625-1199",
		},
		"shipping_lines": []map[string]any{
			{"title": "Standard Shipping", "price": "5.00"},
		},
	}
	return json.Marshal(order)
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
