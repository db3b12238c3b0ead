package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a catalog entry in the "service" collection, identified by
// a unique code such as "CBC".
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code        string             `bson:"code" json:"code"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CreateServiceRequest uses a price pointer so an explicit zero price
// passes the required check while negative prices are still rejected.
type CreateServiceRequest struct {
	Code        string   `json:"code" binding:"required,notblank"`
	Name        string   `json:"name" binding:"required,notblank"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}
