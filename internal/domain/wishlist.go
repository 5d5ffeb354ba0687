package domain

// Wishlist holds one document per user, keyed by the user's external id.
type Wishlist struct {
	UserID     string   `bson:"_id" json:"user_id"`
	ProductIDs []string `bson:"product_ids" json:"product_ids"`
}

func (w Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
