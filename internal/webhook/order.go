package webhook

// Order is the subset of Shopify's orders/create payload this service reads.
// It exists only for the duration of one webhook request.
type Order struct {
	ID              int64          `json:"id"`
	OrderNumber     int64          `json:"order_number"`
	Email           string         `json:"email"`
	TotalPrice      string         `json:"total_price"`
	Currency        string         `json:"currency"`
	LineItems       []LineItem     `json:"line_items"`
	BillingAddress  *Address       `json:"billing_address"`
	ShippingAddress *Address       `json:"shipping_address"`
	ShippingLines   []ShippingLine `json:"shipping_lines"`
}

type LineItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Title    string `json:"title"`
}

// Address carries the fields shared by Shopify billing and shipping blocks.
// Shopify has no phone at the shipping level; Phone is only read for billing.
type Address struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	ProvinceCode string `json:"province_code"`
	Zip          string `json:"zip"`
	CountryCode  string `json:"country_code"`
	Phone        string `json:"phone"`
}

type ShippingLine struct {
	Title string `json:"title"`
	Price string `json:"price"`
}
