package woocommerce

import (
	"context"
	"net/http"
	"net/url"
)

type Product struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// FindProductBySKU looks up a catalog product by exact SKU.
// Returns nil when no product matches; SKUs are unique in WooCommerce,
// but if the search returns several results the first one wins.
func (c Client) FindProductBySKU(ctx context.Context, sku string) (*Product, error) {
	var products []Product
	path := "/products?sku=" + url.QueryEscape(sku)
	if _, err := c.doJSON(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}
