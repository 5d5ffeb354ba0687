package dto

type WishlistRequest struct {
	ProductID string `json:"product_id"`
}

type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
}
