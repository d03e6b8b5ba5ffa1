package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"orderbridge/internal/api"
	"orderbridge/pkg/config"
	"orderbridge/pkg/woocommerce"
)

// OrderTransformer maps an inbound Shopify order into a WooCommerce
// order-creation payload.
type OrderTransformer interface {
	Transform(ctx context.Context, order *Order) *woocommerce.OrderCreateRequest
}

// OrderSubmitter creates the mapped order downstream.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, order *woocommerce.OrderCreateRequest) (*woocommerce.Order, error)
}

type Handler struct {
	Cfg config.Config

	Transformer OrderTransformer
	Orders      OrderSubmitter
}

type successResponse struct {
	Success           bool  `json:"success"`
	DownstreamOrderID int64 `json:"downstream_order_id"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ServeHTTP handles POST /webhook/shopify/order-create.
//
// The body is kept verbatim until the signature check passes: the HMAC is
// computed over the exact raw bytes, so parsing must not happen first.
// Nothing here retries; Shopify redelivers on non-2xx.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hmacHeader := strings.TrimSpace(r.Header.Get("X-Shopify-Hmac-Sha256"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.WriteJSON(w, http.StatusInternalServerError, failureResponse{Error: "failed to read request body"})
		return
	}

	if !VerifyShopifyWebhook(body, hmacHeader, h.Cfg.Shopify.WebhookSecret) {
		log.Printf("webhook rejected: invalid signature")
		http.Error(w, "invalid webhook signature", http.StatusUnauthorized)
		return
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		log.Printf("webhook payload parse failed err=%v", err)
		api.WriteJSON(w, http.StatusInternalServerError, failureResponse{Error: err.Error()})
		return
	}

	if total, err := decimal.NewFromString(order.TotalPrice); err == nil {
		log.Printf("webhook order received order_number=%d items=%d total=%s %s",
			order.OrderNumber, len(order.LineItems), total.StringFixed(2), order.Currency)
	} else {
		log.Printf("webhook order received order_number=%d items=%d", order.OrderNumber, len(order.LineItems))
	}

	outbound := h.Transformer.Transform(r.Context(), &order)

	created, err := h.Orders.CreateOrder(r.Context(), outbound)
	if err != nil {
		log.Printf("order create failed order_number=%d err=%v", order.OrderNumber, err)
		api.WriteJSON(w, http.StatusInternalServerError, failureResponse{Error: err.Error()})
		return
	}

	log.Printf("order created order_number=%d woo_order_id=%d", order.OrderNumber, created.ID)
	api.WriteJSON(w, http.StatusOK, successResponse{Success: true, DownstreamOrderID: created.ID})
}
