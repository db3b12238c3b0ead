package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result is a test result in the "result" collection. Values is a free
// key/value mapping; the store is schemaless and the API does not
// constrain its shape.
type Result struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string                 `bson:"user_id" json:"user_id"`
	ServiceCode string                 `bson:"service_code" json:"service_code"`
	Values      map[string]interface{} `bson:"values" json:"values"`
	Notes       string                 `bson:"notes,omitempty" json:"notes,omitempty"`
	ReportedAt  time.Time              `bson:"reported_at" json:"reported_at"`
}

// CreateResultRequest: values may be empty or omitted, so it carries no
// required tag.
type CreateResultRequest struct {
	UserEmail   string                 `json:"user_email" binding:"required,email"`
	ServiceCode string                 `json:"service_code" binding:"required,notblank"`
	Values      map[string]interface{} `json:"values"`
	Notes       string                 `json:"notes"`
}
