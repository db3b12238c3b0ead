package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Payment is stored in the "payment" collection and is immutable after
// creation. Amount is copied from the service price at payment time;
// Reference is the first 12 hex characters of a digest over the user
// id, service code and payment timestamp.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"user_id" json:"user_id"`
	ServiceCode string             `bson:"service_code" json:"service_code"`
	Amount      float64            `bson:"amount" json:"amount"`
	Status      string             `bson:"status" json:"status"`
	Reference   string             `bson:"reference" json:"reference"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type CreatePaymentRequest struct {
	UserEmail   string `json:"user_email" binding:"required,email"`
	ServiceCode string `json:"service_code" binding:"required,notblank"`
}
