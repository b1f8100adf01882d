package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderService struct {
	orderRepo ports.OrderRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
}

func NewOrderService(
	orderRepo ports.OrderRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
		validate:  validate,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, order *domain.BikeOrder) (*domain.InsertResult, error) {
	if err := s.validate.Struct(order); err != nil {
		s.logger.Error("Order validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Only a recorded payment may mark an order paid.
	order.ID = primitive.NilObjectID
	order.Paid = false
	order.TransactionID = ""

	result, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create order", map[string]interface{}{
			"error": err.Error(),
			"email": order.Email,
		})
		return nil, err
	}

	s.logger.Info("Order created successfully", map[string]interface{}{
		"order_id": result.InsertedID,
		"email":    order.Email,
		"price":    order.Price,
	})

	return result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.BikeOrder, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		s.logger.Error("Invalid order id", map[string]interface{}{
			"order_id": id,
		})
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to get order", map[string]interface{}{
			"error":    err.Error(),
			"order_id": id,
		})
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]*domain.BikeOrder, error) {
	orders, err := s.orderRepo.GetOrdersByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to get orders", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return nil, err
	}

	s.logger.Info("Retrieved orders for buyer", map[string]interface{}{
		"email":        email,
		"orders_count": len(orders),
	})

	return orders, nil
}
