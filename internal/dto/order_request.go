package dto

type ShippingAddressRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

type OrderRequest struct {
	// OrderNumber is optional; a retried submit carrying the same number
	// returns the order that was already placed.
	OrderNumber     string                 `json:"order_number"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address"`
	SaveAddress     bool                   `json:"save_address"`

	UserID        string `json:"-"`
	CustomerName  string `json:"-"`
	CustomerEmail string `json:"-"`
}

type OrderStatusRequest struct {
	OrderID string `json:"-"`
	Status  string `json:"status"`
}
