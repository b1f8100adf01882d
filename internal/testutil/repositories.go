package testutil

import (
	"context"
	"sync"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryRepository struct {
	mu         sync.Mutex
	categories []*domain.Category
	Err        error
	Calls      int
}

func NewCategoryRepository(categories ...*domain.Category) *CategoryRepository {
	r := &CategoryRepository{}
	for _, c := range categories {
		cp := *c
		if cp.ID.IsZero() {
			cp.ID = primitive.NewObjectID()
		}
		r.categories = append(r.categories, &cp)
	}
	return r
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

type UserRepository struct {
	mu    sync.Mutex
	users []*domain.User
	Err   error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := *user
	cp.ID = primitive.NewObjectID()
	r.users = append(r.users, &cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

type OrderRepository struct {
	mu     sync.Mutex
	orders []*domain.BikeOrder
	Err    error
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.BikeOrder) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := *order
	cp.ID = primitive.NewObjectID()
	r.orders = append(r.orders, &cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*domain.BikeOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *OrderRepository) GetOrdersByEmail(ctx context.Context, email string) ([]*domain.BikeOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*domain.BikeOrder{}
	for _, o := range r.orders {
		if o.Email == email {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *OrderRepository) markPaid(id primitive.ObjectID, transactionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Paid = true
			o.TransactionID = transactionID
		}
	}
}

type ListingRepository struct {
	mu       sync.Mutex
	listings []*domain.AddedBike
	Err      error
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) CreateListing(ctx context.Context, bike *domain.AddedBike) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := *bike
	cp.ID = primitive.NewObjectID()
	r.listings = append(r.listings, &cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (r *ListingRepository) ListListings(ctx context.Context) ([]*domain.AddedBike, error) {
	return r.filter(func(*domain.AddedBike) bool { return true })
}

func (r *ListingRepository) GetListingsBySeller(ctx context.Context, email string) ([]*domain.AddedBike, error) {
	return r.filter(func(b *domain.AddedBike) bool { return b.SellerEmail == email })
}

func (r *ListingRepository) filter(keep func(*domain.AddedBike) bool) ([]*domain.AddedBike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*domain.AddedBike{}
	for _, b := range r.listings {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Get returns a copy of the listing with id, or nil.
func (r *ListingRepository) Get(id primitive.ObjectID) *domain.AddedBike {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.listings {
		if b.ID == id {
			cp := *b
			return &cp
		}
	}
	return nil
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i, b := range r.listings {
		if b.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func (r *ListingRepository) SetAdvertise(ctx context.Context, id primitive.ObjectID, flag string) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, b := range r.listings {
		if b.ID == id {
			result := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if b.IsAdvertise != flag {
				b.IsAdvertise = flag
				result.ModifiedCount = 1
			}
			return result, nil
		}
	}
	r.listings = append(r.listings, &domain.AddedBike{ID: id, IsAdvertise: flag})
	hex := id.Hex()
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &hex}, nil
}

// PaymentRepository applies both writes under one lock, mirroring the
// transactional Mongo implementation.
type PaymentRepository struct {
	mu       sync.Mutex
	orders   *OrderRepository
	payments []*domain.Payment
	Err      error
}

func NewPaymentRepository(orders *OrderRepository) *PaymentRepository {
	return &PaymentRepository{orders: orders}
}

func (r *PaymentRepository) RecordPayment(ctx context.Context, payment *domain.Payment, orderID primitive.ObjectID) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := *payment
	cp.ID = primitive.NewObjectID()
	r.payments = append(r.payments, &cp)
	r.orders.markPaid(orderID, payment.TransactionID)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (r *PaymentRepository) Payments() []*domain.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Payment, len(r.payments))
	copy(out, r.payments)
	return out
}
