package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService struct {
	gateway     ports.PaymentGateway
	paymentRepo ports.PaymentRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	currency    string
}

func NewPaymentService(
	gateway ports.PaymentGateway,
	paymentRepo ports.PaymentRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	currency string,
) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		logger:      logger,
		validate:    validate,
		currency:    currency,
	}
}

// maxMinorUnits is 2^63, the first magnitude an int64 cannot hold.
const maxMinorUnits = 1 << 63

// ToMinorUnits converts a price in currency units to the processor's integer
// amount, truncating fractions of a cent. The result is only defined for
// prices that pass validMinorUnits.
func ToMinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

func validMinorUnits(price float64) bool {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return false
	}
	return math.Abs(math.Trunc(price*100)) < maxMinorUnits
}

func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if !validMinorUnits(price) {
		return "", fmt.Errorf("%w: price %v is out of range", domain.ErrValidation, price)
	}

	amount := ToMinorUnits(price)
	secret, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		s.logger.Error("Failed to create payment intent", map[string]interface{}{
			"error":  err.Error(),
			"amount": amount,
		})
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	s.logger.Info("Payment intent created", map[string]interface{}{
		"amount":   amount,
		"currency": s.currency,
	})

	return secret, nil
}

func (s *PaymentService) RecordPayment(ctx context.Context, payment *domain.Payment) (*domain.InsertResult, error) {
	if err := s.validate.Struct(payment); err != nil {
		s.logger.Error("Payment validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	orderID, err := domain.ParseID(payment.OrderedBikeID)
	if err != nil {
		s.logger.Error("Invalid order id in payment", map[string]interface{}{
			"order_id": payment.OrderedBikeID,
		})
		return nil, err
	}

	payment.ID = primitive.NilObjectID
	result, err := s.paymentRepo.RecordPayment(ctx, payment, orderID)
	if err != nil {
		s.logger.Error("Failed to record payment", map[string]interface{}{
			"error":          err.Error(),
			"order_id":       payment.OrderedBikeID,
			"transaction_id": payment.TransactionID,
		})
		return nil, err
	}

	s.logger.Info("Payment recorded, order marked paid", map[string]interface{}{
		"payment_id":     result.InsertedID,
		"order_id":       payment.OrderedBikeID,
		"transaction_id": payment.TransactionID,
	})

	return result, nil
}
