package mongodb

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	orders   *mongo.Collection
}

func NewPaymentRepository(db *Database) *PaymentRepository {
	return &PaymentRepository{
		client:   db.Client,
		payments: db.DB.Collection(PaymentsCollection),
		orders:   db.DB.Collection(OrdersCollection),
	}
}

// RecordPayment inserts the payment and marks the order paid inside one
// transaction, so either both writes land or neither does. The order is not
// required to exist.
func (r *PaymentRepository) RecordPayment(ctx context.Context, payment *domain.Payment, orderID primitive.ObjectID) (*domain.InsertResult, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	res, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		inserted, err := r.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payment: %w", err)
		}

		_, err = r.orders.UpdateOne(sc,
			bson.M{"_id": orderID},
			bson.M{"$set": bson.M{
				"paid":          true,
				"transactionId": payment.TransactionID,
			}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to mark order paid: %w", err)
		}

		return inserted, nil
	})
	if err != nil {
		return nil, err
	}

	return insertResult(res.(*mongo.InsertOneResult)), nil
}
