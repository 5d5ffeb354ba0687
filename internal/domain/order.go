package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

const PaymentMethodCashOnDelivery = "Cash on Delivery"

// statusTransitions enforces the order lifecycle. Delivered and Cancelled
// are terminal, so a delivered order can never be re-delivered and the
// units-sold counters cannot be incremented twice.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a denormalized snapshot of the product at purchase time.
type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image" json:"image"`
	Quantity    int64   `bson:"quantity" json:"quantity"`
	ShippingFee float64 `bson:"shipping_fee" json:"shipping_fee"`
}

type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	Zip       string `bson:"zip" json:"zip"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"order_number" json:"order_number"`
	UserID          string             `bson:"user_id" json:"user_id"`
	CustomerName    string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"total_amount"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	Status          OrderStatus        `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"payment_method" json:"payment_method"`
	CreatedAt       int64              `bson:"created_at" json:"created_at"`
	UpdatedAt       int64              `bson:"updated_at" json:"updated_at"`
}
