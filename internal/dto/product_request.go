package dto

type ProductRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Badge         *string  `json:"badge,omitempty"`
	ShippingFee   float64  `json:"shipping_fee"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	CategoryID    string   `json:"category_id"`
	Featured      bool     `json:"featured"`
	Stock         int64    `json:"stock"`
}
