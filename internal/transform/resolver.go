package transform

import (
	"context"
	"log"
	"strings"

	"orderbridge/pkg/woocommerce"
)

// Catalog is the downstream product lookup the resolver needs.
type Catalog interface {
	FindProductBySKU(ctx context.Context, sku string) (*woocommerce.Product, error)
}

// Resolver maps merchant SKUs to WooCommerce product ids. Lookups are
// best-effort: a failed or empty lookup degrades to product id 0 so a
// missing product never aborts the whole order.
type Resolver struct {
	Catalog Catalog
}

func (r Resolver) ResolveBySKU(ctx context.Context, sku string) int64 {
	if strings.TrimSpace(sku) == "" {
		return 0
	}

	p, err := r.Catalog.FindProductBySKU(ctx, sku)
	if err != nil {
		log.Printf("product lookup failed sku=%s err=%v", sku, err)
		return 0
	}
	if p == nil {
		log.Printf("product not found sku=%s", sku)
		return 0
	}
	return p.ID
}
