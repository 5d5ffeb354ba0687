package dto

import "github.com/grazeweb/my-eshop-app/internal/domain"

type OrderResponse struct {
	ID              string                 `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	UserID          string                 `json:"user_id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	Items           []domain.OrderItem     `json:"items"`
	TotalAmount     float64                `json:"total_amount"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"payment_method"`
	CreatedAt       int64                  `json:"created_at"`
}

type AccountSummaryResponse struct {
	OrderCount    int64 `json:"order_count"`
	ProductsOwned int64 `json:"products_bought"`
}
