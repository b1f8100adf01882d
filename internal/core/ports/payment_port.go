package ports

import (
	"context"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentGateway interface {
	// CreatePaymentIntent takes the amount in minor units and returns the
	// client secret issued by the processor.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentRepository interface {
	// RecordPayment stores the payment and marks the referenced order paid
	// as a single unit of work.
	RecordPayment(ctx context.Context, payment *domain.Payment, orderID primitive.ObjectID) (*domain.InsertResult, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.InsertResult, error)
}
