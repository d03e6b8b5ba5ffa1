package transform

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"orderbridge/internal/webhook"
	"orderbridge/pkg/woocommerce"
)

// lookupConcurrency bounds the per-order SKU fan-out so a large order
// doesn't hammer the catalog endpoint.
const lookupConcurrency = 4

// SKUResolver resolves a SKU to a WooCommerce product id, 0 when unresolved.
type SKUResolver interface {
	ResolveBySKU(ctx context.Context, sku string) int64
}

type Transformer struct {
	Resolver SKUResolver
}

// Transform maps a Shopify order into a WooCommerce order-creation payload.
// It never fails: absent fields map to empty strings and unresolved SKUs map
// to product id 0, so every inbound line item yields exactly one outbound
// line item in the original order.
func (t Transformer) Transform(ctx context.Context, order *webhook.Order) *woocommerce.OrderCreateRequest {
	items := make([]woocommerce.LineItem, len(order.LineItems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, li := range order.LineItems {
		i, li := i, li
		g.Go(func() error {
			// Results land by index; completion order doesn't matter.
			items[i] = woocommerce.LineItem{
				ProductID: t.Resolver.ResolveBySKU(gctx, li.SKU),
				Quantity:  li.Quantity,
				Total:     li.Price,
				SKU:       li.SKU,
				Name:      li.Title,
			}
			return nil
		})
	}
	_ = g.Wait()

	shippingLines := make([]woocommerce.ShippingLine, 0, len(order.ShippingLines))
	for _, sl := range order.ShippingLines {
		shippingLines = append(shippingLines, woocommerce.ShippingLine{
			MethodTitle: sl.Title,
			Total:       sl.Price,
		})
	}

	return &woocommerce.OrderCreateRequest{
		Status:        "processing",
		Billing:       mapAddress(order.BillingAddress, true),
		Shipping:      mapAddress(order.ShippingAddress, false),
		LineItems:     items,
		ShippingLines: shippingLines,
		CustomerNote:  fmt.Sprintf("Imported from Shopify order #%d", order.OrderNumber),
		MetaData: []woocommerce.MetaData{
			{Key: "_shopify_order_id", Value: strconv.FormatInt(order.ID, 10)},
			{Key: "_shopify_order_number", Value: strconv.FormatInt(order.OrderNumber, 10)},
		},
	}
}

// mapAddress is the full Shopify -> WooCommerce address field table.
// A nil source yields an all-empty block, never an absent one. Shopify has
// no shipping-level phone, so withPhone is true for billing only.
func mapAddress(a *webhook.Address, withPhone bool) woocommerce.Address {
	if a == nil {
		return woocommerce.Address{}
	}
	out := woocommerce.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.ProvinceCode,
		Postcode:  a.Zip,
		Country:   a.CountryCode,
	}
	if withPhone {
		out.Phone = a.Phone
	}
	return out
}
