package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice *float64           `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Badge         *string            `bson:"badge,omitempty" json:"badge,omitempty"`
	ShippingFee   float64            `bson:"shipping_fee" json:"shipping_fee"`
	Image         string             `bson:"image" json:"image"`
	Images        []string           `bson:"images" json:"images"`
	CategoryID    string             `bson:"category_id" json:"category_id"`
	Featured      bool               `bson:"featured" json:"featured"`
	Rating        float64            `bson:"rating" json:"rating"`
	Stock         int64              `bson:"stock" json:"stock"`
	UnitsSold     int64              `bson:"units_sold" json:"units_sold"`
	CreatedAt     int64              `bson:"created_at" json:"created_at"`
	UpdatedAt     int64              `bson:"updated_at" json:"updated_at"`
}

type Category struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
