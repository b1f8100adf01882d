package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sm8ta/bikes4u_marketplace/internal/config"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/domain"
	"github.com/sm8ta/bikes4u_marketplace/internal/core/services"
	"github.com/sm8ta/bikes4u_marketplace/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testServer struct {
	engine     *gin.Engine
	tokens     *JWTTokenService
	categories *testutil.CategoryRepository
	users      *testutil.UserRepository
	orders     *testutil.OrderRepository
	listings   *testutil.ListingRepository
	payments   *testutil.PaymentRepository
	gateway    *testutil.PaymentGateway
	metrics    *testutil.Metrics
}

func newTestServer(t *testing.T, categories ...*domain.Category) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := &testutil.Logger{}
	metrics := &testutil.Metrics{}
	validate := validator.New()

	s := &testServer{
		tokens:     newTestTokenService(time.Now()),
		categories: testutil.NewCategoryRepository(categories...),
		users:      testutil.NewUserRepository(),
		orders:     testutil.NewOrderRepository(),
		listings:   testutil.NewListingRepository(),
		gateway:    &testutil.PaymentGateway{Secret: "pi_123_secret_456"},
		metrics:    metrics,
	}
	s.payments = testutil.NewPaymentRepository(s.orders)

	router, err := NewRouter(
		&config.HTTP{Env: "test"},
		s.tokens,
		logger,
		NewCategoryHandler(services.NewCategoryService(s.categories, logger, testutil.NewCache(), time.Minute), logger, metrics),
		NewUserHandler(
			services.NewUserService(s.users, logger, validate),
			services.NewAuthService(s.users, s.tokens, logger),
			logger, metrics,
		),
		NewOrderHandler(services.NewOrderService(s.orders, logger, validate), logger, metrics),
		NewListingHandler(services.NewListingService(s.listings, logger, validate), logger, metrics),
		NewPaymentHandler(services.NewPaymentService(s.gateway, s.payments, logger, validate, "usd"), logger, metrics),
	)
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	s.engine = router.Engine()
	return s
}

func (s *testServer) token(t *testing.T, email string) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(email)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}

func TestBanner(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/", nil, "")
	if w.Code != http.StatusOK || w.Body.String() != "Hello From Bikes 4U" {
		t.Errorf("GET / = %d %q", w.Code, w.Body.String())
	}
}

func TestCategoryRoutes(t *testing.T) {
	road := &domain.Category{ID: primitive.NewObjectID(), Name: "Road"}
	s := newTestServer(t, road, &domain.Category{Name: "Mountain"})

	w := s.do(t, http.MethodGet, "/categories", nil, "")
	var list []domain.Category
	decode(t, w, &list)
	if len(list) != 2 {
		t.Fatalf("got %d categories, want 2", len(list))
	}

	w = s.do(t, http.MethodGet, "/categories/"+road.ID.Hex(), nil, "")
	var got domain.Category
	decode(t, w, &got)
	if got.Name != "Road" {
		t.Errorf("category = %+v", got)
	}

	w = s.do(t, http.MethodGet, "/categories/"+primitive.NewObjectID().Hex(), nil, "")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Errorf("missing category = %d %q, want 200 null", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/categories/not-an-id", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}
}

func TestCategoryRoutesForwardSeededFields(t *testing.T) {
	sports := &domain.Category{
		ID:         primitive.NewObjectID(),
		Name:       "Sports",
		Attributes: map[string]interface{}{"category_id": "01", "filterKey": "sport"},
	}
	s := newTestServer(t, sports)

	check := func(t *testing.T, doc map[string]interface{}) {
		t.Helper()
		if doc["_id"] != sports.ID.Hex() || doc["name"] != "Sports" {
			t.Errorf("named fields = %v", doc)
		}
		if doc["category_id"] != "01" || doc["filterKey"] != "sport" {
			t.Errorf("seeded fields missing from %v", doc)
		}
	}

	// The second round is served from the cache.
	for round := 0; round < 2; round++ {
		var list []map[string]interface{}
		decode(t, s.do(t, http.MethodGet, "/categories", nil, ""), &list)
		if len(list) != 1 {
			t.Fatalf("round %d: got %d categories", round, len(list))
		}
		check(t, list[0])

		var one map[string]interface{}
		decode(t, s.do(t, http.MethodGet, "/categories/"+sports.ID.Hex(), nil, ""), &one)
		check(t, one)
	}

	if s.categories.Calls != 2 {
		t.Errorf("repository calls = %d, want 2", s.categories.Calls)
	}
}

func TestUserRolesAndToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/users", map[string]string{"email": "a@x.com", "accountType": "Seller"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("POST /users = %d %s", w.Code, w.Body.String())
	}
	var inserted domain.InsertResult
	decode(t, w, &inserted)
	if !inserted.Acknowledged || inserted.InsertedID == "" {
		t.Errorf("insert result = %+v", inserted)
	}

	var seller isSellerResponse
	decode(t, s.do(t, http.MethodGet, "/users/seller/a@x.com", nil, ""), &seller)
	if !seller.IsSeller {
		t.Error("expected isSeller true")
	}
	var admin isAdminResponse
	decode(t, s.do(t, http.MethodGet, "/users/admin/a@x.com", nil, ""), &admin)
	if admin.IsAdmin {
		t.Error("expected isAdmin false")
	}
	var buyer isBuyerResponse
	decode(t, s.do(t, http.MethodGet, "/users/buyer/nobody@x.com", nil, ""), &buyer)
	if buyer.IsBuyer {
		t.Error("expected isBuyer false for unknown email")
	}

	w = s.do(t, http.MethodGet, "/jwt?email=a@x.com", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /jwt = %d", w.Code)
	}
	var issued tokenResponse
	decode(t, w, &issued)
	payload, err := s.tokens.VerifyToken(issued.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if payload.Email != "a@x.com" {
		t.Errorf("token email = %q", payload.Email)
	}

	w = s.do(t, http.MethodGet, "/jwt?email=none@x.com", nil, "")
	if w.Code != http.StatusForbidden || w.Body.String() != `{"accessToken":""}` {
		t.Errorf("unknown email = %d %s", w.Code, w.Body.String())
	}
}

func TestSignupCannotGrantAdmin(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodPost, "/users", map[string]string{"email": "sneaky@x.com", "role": "admin"}, "")

	var admin isAdminResponse
	decode(t, s.do(t, http.MethodGet, "/users/admin/sneaky@x.com", nil, ""), &admin)
	if admin.IsAdmin {
		t.Error("signup granted the admin role")
	}
}

func TestAdminSeededInStore(t *testing.T) {
	s := newTestServer(t)
	if _, err := s.users.CreateUser(context.Background(), &domain.User{Email: "root@x.com", Role: domain.Admin}); err != nil {
		t.Fatal(err)
	}

	var admin isAdminResponse
	decode(t, s.do(t, http.MethodGet, "/users/admin/root@x.com", nil, ""), &admin)
	if !admin.IsAdmin {
		t.Error("expected isAdmin true")
	}
}

func TestDeleteUser(t *testing.T) {
	s := newTestServer(t)
	result, err := s.users.CreateUser(context.Background(), &domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatal(err)
	}

	w := s.do(t, http.MethodDelete, "/users/"+result.InsertedID, nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("delete without token = %d, want 401", w.Code)
	}

	w = s.do(t, http.MethodDelete, "/users/"+result.InsertedID, nil, s.token(t, "a@x.com"))
	var deleted domain.DeleteResult
	decode(t, w, &deleted)
	if deleted.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", deleted.DeletedCount)
	}

	var users []domain.User
	decode(t, s.do(t, http.MethodGet, "/users", nil, ""), &users)
	if len(users) != 0 {
		t.Errorf("users left = %d", len(users))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID().Hex()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/bikeorders?email=a@x.com"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payments"},
		{http.MethodDelete, "/users/" + id},
		{http.MethodPost, "/addedbikes"},
		{http.MethodGet, "/addedbikes?email=a@x.com"},
		{http.MethodDelete, "/addedbikes/" + id},
		{http.MethodPut, "/addedbikes/" + id},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := s.do(t, route.method, route.path, nil, "")
			if w.Code != http.StatusUnauthorized {
				t.Errorf("no token: status = %d, want 401", w.Code)
			}

			w = s.do(t, route.method, route.path, nil, "garbage")
			if w.Code != http.StatusForbidden {
				t.Errorf("bad token: status = %d, want 403", w.Code)
			}
			var resp errorResponse
			decode(t, w, &resp)
			if resp.Message != "forbidden access" {
				t.Errorf("message = %q", resp.Message)
			}
		})
	}
}

func TestExpiredTokenIsForbidden(t *testing.T) {
	s := newTestServer(t)
	s.tokens.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }
	stale := s.token(t, "a@x.com")
	s.tokens.now = time.Now

	w := s.do(t, http.MethodGet, "/bikeorders?email=a@x.com", nil, stale)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestMyOrders(t *testing.T) {
	s := newTestServer(t)
	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		w := s.do(t, http.MethodPost, "/bikeorders", map[string]interface{}{"email": email, "price": 100}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("POST /bikeorders = %d %s", w.Code, w.Body.String())
		}
	}
	tokenB := s.token(t, "b@x.com")
	tokenA := s.token(t, "a@x.com")

	w := s.do(t, http.MethodGet, "/bikeorders?email=a@x.com", nil, tokenB)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign email status = %d, want 403", w.Code)
	}

	var mine []domain.BikeOrder
	decode(t, s.do(t, http.MethodGet, "/bikeorders?email=a@x.com", nil, tokenA), &mine)
	if len(mine) != 2 {
		t.Fatalf("got %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.Email != "a@x.com" {
			t.Errorf("leaked order for %q", o.Email)
		}
	}

	var implicit []domain.BikeOrder
	decode(t, s.do(t, http.MethodGet, "/bikeorders", nil, tokenB), &implicit)
	if len(implicit) != 1 || implicit[0].Email != "b@x.com" {
		t.Errorf("orders without email query = %+v", implicit)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing email", map[string]interface{}{"price": 10}},
		{"bad email", map[string]interface{}{"email": "nope", "price": 10}},
		{"missing price", map[string]interface{}{"email": "a@x.com"}},
		{"negative price", map[string]interface{}{"email": "a@x.com", "price": -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/bikeorders", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestOrderPaymentFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/bikeorders", map[string]interface{}{
		"email":    "a@x.com",
		"bikeName": "Yamaha R15",
		"price":    500,
		"paid":     true,
	}, "")
	var inserted domain.InsertResult
	decode(t, w, &inserted)

	var order domain.BikeOrder
	decode(t, s.do(t, http.MethodGet, "/bikeorders/"+inserted.InsertedID, nil, ""), &order)
	if order.Paid {
		t.Fatal("new order must start unpaid")
	}

	token := s.token(t, "a@x.com")
	w = s.do(t, http.MethodPost, "/create-payment-intent", map[string]interface{}{"price": 500}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create-payment-intent = %d %s", w.Code, w.Body.String())
	}
	var intent clientSecretResponse
	decode(t, w, &intent)
	if intent.ClientSecret != "pi_123_secret_456" {
		t.Errorf("clientSecret = %q", intent.ClientSecret)
	}
	if s.gateway.LastAmount != 50000 || s.gateway.LastCurrency != "usd" {
		t.Errorf("gateway got %d %s", s.gateway.LastAmount, s.gateway.LastCurrency)
	}

	w = s.do(t, http.MethodPost, "/payments", map[string]interface{}{
		"orderedbikeId": inserted.InsertedID,
		"transactionId": "T1",
		"price":         500,
		"email":         "a@x.com",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /payments = %d %s", w.Code, w.Body.String())
	}

	decode(t, s.do(t, http.MethodGet, "/bikeorders/"+inserted.InsertedID, nil, ""), &order)
	if !order.Paid || order.TransactionID != "T1" {
		t.Errorf("order after payment = paid %v txn %q", order.Paid, order.TransactionID)
	}
	if len(s.payments.Payments()) != 1 {
		t.Errorf("payments stored = %d", len(s.payments.Payments()))
	}
}

func TestPaymentErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "a@x.com")

	w := s.do(t, http.MethodPost, "/create-payment-intent", map[string]interface{}{}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing price = %d, want 400", w.Code)
	}

	s.gateway.Err = errors.New("card network down")
	w = s.do(t, http.MethodPost, "/create-payment-intent", map[string]interface{}{"price": 10}, token)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("gateway failure = %d, want 500", w.Code)
	}

	w = s.do(t, http.MethodPost, "/payments", map[string]interface{}{
		"orderedbikeId": "xyz",
		"transactionId": "T1",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed order id = %d, want 400", w.Code)
	}
	if len(s.payments.Payments()) != 0 {
		t.Error("payment stored despite a malformed order id")
	}
}

func TestOrderNotFoundAndMalformed(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/bikeorders/"+primitive.NewObjectID().Hex(), nil, "")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Errorf("missing order = %d %q", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/bikeorders/xyz", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id = %d, want 400", w.Code)
	}
	var resp errorResponse
	decode(t, w, &resp)
	if resp.Message != "invalid id" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestListingRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "seller@x.com")

	w := s.do(t, http.MethodPost, "/addedbikes", map[string]interface{}{
		"sellerEmail": "seller@x.com",
		"name":        "Suzuki Gixxer",
		"resalePrice": 1200,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /addedbikes = %d %s", w.Code, w.Body.String())
	}
	var inserted domain.InsertResult
	decode(t, w, &inserted)

	s.do(t, http.MethodPost, "/addedbikes", map[string]interface{}{"sellerEmail": "other@x.com"}, token)

	var mine []domain.AddedBike
	decode(t, s.do(t, http.MethodGet, "/addedbikes?email=seller@x.com", nil, token), &mine)
	if len(mine) != 1 || mine[0].Name != "Suzuki Gixxer" {
		t.Errorf("seller listings = %+v", mine)
	}

	var feed []domain.AddedBike
	decode(t, s.do(t, http.MethodGet, "/addedbikesss", nil, ""), &feed)
	if len(feed) != 2 {
		t.Errorf("public feed has %d listings, want 2", len(feed))
	}

	w = s.do(t, http.MethodDelete, "/addedbikes/"+inserted.InsertedID, nil, token)
	var deleted domain.DeleteResult
	decode(t, w, &deleted)
	if deleted.DeletedCount != 1 {
		t.Errorf("deletedCount = %d", deleted.DeletedCount)
	}
}

func TestAdvertiseListing(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "seller@x.com")

	var inserted domain.InsertResult
	decode(t, s.do(t, http.MethodPost, "/addedbikes", map[string]interface{}{"sellerEmail": "seller@x.com"}, token), &inserted)
	id, err := primitive.ObjectIDFromHex(inserted.InsertedID)
	if err != nil {
		t.Fatal(err)
	}

	var first domain.UpdateResult
	decode(t, s.do(t, http.MethodPut, "/addedbikes/"+inserted.InsertedID, map[string]string{"isAdvertise": "no"}, token), &first)
	if first.MatchedCount != 1 || first.ModifiedCount != 1 {
		t.Errorf("first advertise = %+v", first)
	}
	if got := s.listings.Get(id); got.IsAdvertise != domain.AdvertiseFlag {
		t.Errorf("isAdvertise = %q, want advertise", got.IsAdvertise)
	}

	var second domain.UpdateResult
	decode(t, s.do(t, http.MethodPut, "/addedbikes/"+inserted.InsertedID, nil, token), &second)
	if second.MatchedCount != 1 || second.ModifiedCount != 0 {
		t.Errorf("repeat advertise = %+v", second)
	}

	missing := primitive.NewObjectID()
	var upserted domain.UpdateResult
	decode(t, s.do(t, http.MethodPut, "/addedbikes/"+missing.Hex(), nil, token), &upserted)
	if upserted.UpsertedCount != 1 || upserted.UpsertedID == nil || *upserted.UpsertedID != missing.Hex() {
		t.Errorf("upsert result = %+v", upserted)
	}
	if got := s.listings.Get(missing); got == nil || got.IsAdvertise != domain.AdvertiseFlag {
		t.Error("upserted listing is not advertised")
	}
}

func TestStoreFailureIsInternalError(t *testing.T) {
	s := newTestServer(t)
	s.orders.Err = errors.New("connection reset")

	w := s.do(t, http.MethodPost, "/bikeorders", map[string]interface{}{"email": "a@x.com", "price": 1}, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestHandlersRecordMetrics(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/categories", nil, "")
	s.do(t, http.MethodGet, "/users", nil, "")

	if s.metrics.Calls != 2 {
		t.Errorf("metrics calls = %d, want 2", s.metrics.Calls)
	}
}

func TestCORSConfig(t *testing.T) {
	open := corsConfig("")
	if !open.AllowAllOrigins {
		t.Error("empty origin list should allow all origins")
	}
	if !corsConfig("*").AllowAllOrigins {
		t.Error("* should allow all origins")
	}

	restricted := corsConfig("https://a.example, https://b.example")
	if restricted.AllowAllOrigins {
		t.Error("explicit origins should not allow all")
	}
	if len(restricted.AllowOrigins) != 2 || restricted.AllowOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", restricted.AllowOrigins)
	}
}
