package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyShopifyWebhook(t *testing.T) {
	body := []byte(`{"id":450789469,"order_number":1001}`)
	secret := "shhh"

	if !VerifyShopifyWebhook(body, sign(body, secret), secret) {
		t.Fatalf("expected valid signature to verify")
	}
	if VerifyShopifyWebhook(body, sign(body, "wrong-secret"), secret) {
		t.Fatalf("expected signature from wrong secret to fail")
	}
	if VerifyShopifyWebhook(body, "", secret) {
		t.Fatalf("expected missing signature to fail")
	}
	if VerifyShopifyWebhook(body, sign(body, secret), "") {
		t.Fatalf("expected missing secret to fail")
	}
}

func TestVerifyShopifyWebhook_TamperedSignature(t *testing.T) {
	body := []byte(`{"id":1}`)
	secret := "shhh"

	sig := []byte(sign(body, secret))
	sig[0] ^= 0x01
	if VerifyShopifyWebhook(body, string(sig), secret) {
		t.Fatalf("expected tampered signature to fail")
	}
}

func TestVerifyShopifyWebhook_LengthMismatch(t *testing.T) {
	body := []byte(`{"id":1}`)
	if VerifyShopifyWebhook(body, "short", "shhh") {
		t.Fatalf("expected short signature to fail, not panic")
	}
}

// The HMAC covers the exact raw bytes, so a semantically identical but
// reformatted body must not verify against the original signature.
func TestVerifyShopifyWebhook_RawBytesOnly(t *testing.T) {
	body := []byte(`{"id": 450789469, "order_number": 1001}`)
	secret := "shhh"
	sig := sign(body, secret)

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	reserialized, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(reserialized) == string(body) {
		t.Fatalf("test needs a formatting difference to be meaningful")
	}

	if !VerifyShopifyWebhook(body, sig, secret) {
		t.Fatalf("original bytes should verify")
	}
	if VerifyShopifyWebhook(reserialized, sig, secret) {
		t.Fatalf("reserialized bytes must not verify")
	}
}
