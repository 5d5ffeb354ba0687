package domain

const (
	ShippingPolicyFlat    = "flat"
	ShippingPolicyPerItem = "per_item"
)

type CartItem struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	ShippingFee float64 `json:"shipping_fee"`
	Quantity    int64   `json:"quantity"`
}

// Cart is the session-scoped line-item store. It is not safe for concurrent
// use; the owning cart service serializes access.
type Cart struct {
	Items []CartItem `json:"items"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Add appends a line item, merging quantities when the product is already
// in the cart. Quantities below one are clamped to one.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}

	c.Items = append(c.Items, item)
}

// UpdateQuantity sets a line's quantity. A quantity below one removes the
// line entirely.
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

func (c *Cart) Totals(policy string, flatFee float64) CartTotals {
	totals := CartTotals{Subtotal: c.Subtotal()}

	if len(c.Items) > 0 {
		switch policy {
		case ShippingPolicyPerItem:
			for _, item := range c.Items {
				totals.Shipping += item.ShippingFee
			}
		default:
			totals.Shipping = flatFee
		}
	}

	totals.Total = totals.Subtotal + totals.Shipping
	return totals
}
