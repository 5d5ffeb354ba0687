package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID     string             `bson:"author_id" json:"author_id"`
	AuthorName   string             `bson:"author_name" json:"author_name"`
	AuthorAvatar *string            `bson:"author_avatar,omitempty" json:"author_avatar,omitempty"`
	ProductID    string             `bson:"product_id" json:"product_id"`
	Rating       int                `bson:"rating" json:"rating"`
	Title        string             `bson:"title" json:"title"`
	Content      string             `bson:"content" json:"content"`
	CreatedAt    int64              `bson:"created_at" json:"created_at"`
}
