package graph

import (
	"context"
	"testing"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/payment"
	"uniformshop-be/internal/product"
	"uniformshop-be/internal/user"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/* ---------- PRODUCT ---------- */

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Names(ctx context.Context, ids []int) (map[int]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]string), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, in product.Input) (*product.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id int, in product.Input) (*product.Product, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

/* ---------- ORDER ---------- */

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, in order.CreateOrderInput) (*order.CreateOrderResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CreateOrderResult), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListMine(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, status *order.Status) ([]order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id int, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetItems(ctx context.Context, orderID int) ([]order.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderItem), args.Error(1)
}

func (m *MockOrderService) Stats(ctx context.Context) (*order.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Stats), args.Error(1)
}

/* ---------- PAYMENT ---------- */

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Upload(ctx context.Context, in payment.UploadInput) (*payment.UploadResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.UploadResult), args.Error(1)
}

func (m *MockPaymentService) GetLatestForOrder(ctx context.Context, orderID int) (*payment.Slip, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Slip), args.Error(1)
}

func (m *MockPaymentService) ListAll(ctx context.Context) ([]payment.Slip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Slip), args.Error(1)
}

func (m *MockPaymentService) Verify(ctx context.Context, slipID int) (*payment.Slip, error) {
	args := m.Called(ctx, slipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Slip), args.Error(1)
}

func (m *MockPaymentService) Open(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

/* ---------- USER ---------- */

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SignIn(ctx context.Context, code string) (string, *user.User, error) {
	args := m.Called(ctx, code)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) CurrentUser(ctx context.Context) (*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

/* ---------- HELPERS ---------- */

type testResolver struct {
	products *MockProductService
	orders   *MockOrderService
	payments *MockPaymentService
	users    *MockUserService
	schema   graphql.Schema
}

func newTestResolver(t *testing.T) *testResolver {
	t.Helper()
	tr := &testResolver{
		products: new(MockProductService),
		orders:   new(MockOrderService),
		payments: new(MockPaymentService),
		users:    new(MockUserService),
	}
	schema, err := NewSchema(&Resolver{
		ProductSvc: tr.products,
		OrderSvc:   tr.orders,
		PaymentSvc: tr.payments,
		UserSvc:    tr.users,
	})
	require.NoError(t, err)
	tr.schema = schema
	return tr
}

func (tr *testResolver) do(ctx context.Context, query string, vars map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         tr.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
}

func data(t *testing.T, res *graphql.Result) map[string]interface{} {
	t.Helper()
	require.Empty(t, res.Errors)
	m, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	return m
}

func errorCode(t *testing.T, res *graphql.Result) (string, interface{}) {
	t.Helper()
	require.Len(t, res.Errors, 1)
	return res.Errors[0].Message, res.Errors[0].Extensions["code"]
}

func userCtx(id int) context.Context {
	return auth.WithActor(context.Background(), auth.Actor{UserID: id, Role: auth.RoleUser})
}

func adminCtx() context.Context {
	return auth.WithActor(context.Background(), auth.Actor{UserID: 1, Role: auth.RoleAdmin})
}

func errUnauthorized() error {
	return apperr.Authorization("test", "unauthorized")
}
