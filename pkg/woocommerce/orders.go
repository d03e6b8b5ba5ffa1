package woocommerce

import (
	"context"
	"net/http"
)

// OrderCreateRequest is the POST /orders payload.
// https://woocommerce.github.io/woocommerce-rest-api-docs/#create-an-order
type OrderCreateRequest struct {
	Status        string         `json:"status"`
	Billing       Address        `json:"billing"`
	Shipping      Address        `json:"shipping"`
	LineItems     []LineItem     `json:"line_items"`
	ShippingLines []ShippingLine `json:"shipping_lines"`
	CustomerNote  string         `json:"customer_note"`
	MetaData      []MetaData     `json:"meta_data"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type LineItem struct {
	// ProductID 0 means the SKU could not be matched to a catalog product.
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
}

type ShippingLine struct {
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

type MetaData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Order struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (c Client) CreateOrder(ctx context.Context, order *OrderCreateRequest) (*Order, error) {
	var created Order
	if _, err := c.doJSON(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
