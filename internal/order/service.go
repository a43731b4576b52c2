package order

import (
	"context"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/metrics"
	"uniformshop-be/internal/notify"
	"uniformshop-be/internal/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const unknownProductName = "Unknown"

var tracer = otel.Tracer("uniformshop-be/internal/order")

// ProductNamer resolves product ids to display names.
type ProductNamer interface {
	Names(ctx context.Context, ids []int) (map[int]string, error)
}

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	ListMine(ctx context.Context) ([]Order, error)
	ListAll(ctx context.Context, status *Status) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
	GetItems(ctx context.Context, orderID int) ([]OrderItem, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo     Repository
	products ProductNamer
	notifier notify.Sender
	now      func() time.Time
}

func NewService(repo Repository, products ProductNamer, notifier notify.Sender) Service {
	return &service{
		repo:     repo,
		products: products,
		notifier: notifier,
		now:      time.Now,
	}
}

var inputMessages = validation.Messages{
	"StudentName.notblank":   "ต้องระบุชื่อนักเรียน",
	"StudentRoom.notblank":   "ต้องระบุห้องเรียน",
	"StudentNumber.notblank": "ต้องระบุเลขที่",
	"StudentID.notblank":     "ต้องระบุเลขประจำตัว",
	"Items.min":              "ต้องมีสินค้าอย่างน้อย 1 รายการ",
	"ProductID.gt":           "รหัสสินค้าไม่ถูกต้อง",
	"Quantity.min":           "จำนวนสินค้าต้องมากกว่า 0",
	"Price.gte":              "ราคาสินค้าต้องไม่ติดลบ",
	"TotalPrice.gte":         "ราคารวมต้องไม่ติดลบ",
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	ctx, span := tracer.Start(ctx, "order.Create")
	defer span.End()

	timer := metrics.StartTimer("order.Create")
	defer timer.ObserveDuration()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	/* ---------- AUTH ---------- */

	actor, err := auth.Require(ctx, "order.Create")
	if err != nil {
		return nil, err
	}

	/* ---------- VALIDATION ---------- */

	if err := validation.Struct("order.Create", input, inputMessages); err != nil {
		log.Info("order input rejected", zap.Error(err))
		return nil, err
	}

	if sum := input.ItemsTotal(); sum != input.TotalPrice {
		log.Warn("supplied total differs from item sum",
			zap.Int("total_price", input.TotalPrice),
			zap.Int("items_total", sum),
		)
	}

	/* ---------- PERSIST ---------- */

	o := &Order{
		UserID:        actor.UserID,
		StudentName:   input.StudentName,
		StudentRoom:   input.StudentRoom,
		StudentNumber: input.StudentNumber,
		StudentID:     input.StudentID,
		TotalPrice:    input.TotalPrice,
		Status:        StatusPending,
		Notes:         input.Notes,
	}

	orderID, err := s.repo.CreateOrderTx(ctx, o, input.Items)
	if err != nil {
		log.Error("failed to create order", zap.Int("user_id", actor.UserID), zap.Error(err))
		return nil, err
	}
	o.ID = orderID

	metrics.OrdersCreated.Inc()
	span.SetAttributes(attribute.Int("order.id", orderID), attribute.Int("order.items", len(input.Items)))

	log.Info("order created",
		zap.Int("order_id", orderID),
		zap.Int("items", len(input.Items)),
		zap.Int("total_price", input.TotalPrice),
	)

	/* ---------- NOTIFY ---------- */

	s.notifyNewOrder(context.WithoutCancel(ctx), o, input.Items)

	return &CreateOrderResult{OrderID: orderID, Success: true}, nil
}

// notifyNewOrder re-reads the persisted items so the message reflects what
// was stored. Failures here are logged only.
func (s *service) notifyNewOrder(ctx context.Context, o *Order, fallback []ItemInput) {
	log := logger.FromCtx(ctx).With(zap.Int("order_id", o.ID))

	items, err := s.repo.GetItems(ctx, o.ID)
	if err != nil {
		log.Warn("failed to re-read order items for notification", zap.Error(err))
		items = make([]OrderItem, len(fallback))
		for i, it := range fallback {
			items[i] = OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
		}
	}

	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	names, err := s.products.Names(ctx, ids)
	if err != nil {
		log.Warn("failed to resolve product names", zap.Error(err))
		names = map[int]string{}
	}

	lines := make([]notify.OrderLine, 0, len(items))
	for _, it := range items {
		name, ok := names[it.ProductID]
		if !ok || name == "" {
			name = unknownProductName
		}
		lines = append(lines, notify.OrderLine{Name: name, Quantity: it.Quantity, Price: it.Price})
	}

	sent := s.notifier.Send(ctx, notify.NewOrderMessage(notify.OrderSummary{
		OrderID:       o.ID,
		StudentName:   o.StudentName,
		StudentRoom:   o.StudentRoom,
		StudentNumber: o.StudentNumber,
		StudentID:     o.StudentID,
		TotalPrice:    o.TotalPrice,
		Items:         lines,
	}, s.now()))

	log.Info("new order notification dispatched", zap.Bool("sent", sent))
}

func (s *service) GetByID(ctx context.Context, id int) (*Order, error) {
	actor, err := auth.Require(ctx, "order.GetByID")
	if err != nil {
		return nil, err
	}
	return s.getOwned(ctx, actor, id, "order.GetByID")
}

func (s *service) getOwned(ctx context.Context, actor auth.Actor, id int, op string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(o.UserID) {
		logger.FromCtx(ctx).Warn("order access denied",
			zap.Int("order_id", id),
			zap.Int("owner_id", o.UserID),
		)
		return nil, apperr.Authorization(op, "forbidden")
	}
	return o, nil
}

func (s *service) ListMine(ctx context.Context) ([]Order, error) {
	actor, err := auth.Require(ctx, "order.ListMine")
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *service) ListAll(ctx context.Context, status *Status) ([]Order, error) {
	if _, err := auth.RequireAdmin(ctx, "order.ListAll"); err != nil {
		return nil, err
	}
	if status != nil && !status.Valid() {
		return nil, apperr.Validation("order.ListAll", "สถานะคำสั่งซื้อไม่ถูกต้อง")
	}
	return s.repo.ListAll(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	actor, err := auth.RequireAdmin(ctx, "order.UpdateStatus")
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperr.Validation("order.UpdateStatus", "สถานะคำสั่งซื้อไม่ถูกต้อง")
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.OrderStatusChanges.WithLabelValues(string(status)).Inc()
	logger.FromCtx(ctx).Info("order status updated",
		zap.Int("order_id", id),
		zap.String("status", string(status)),
		zap.Int("admin_id", actor.UserID),
	)
	return o, nil
}

func (s *service) GetItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	actor, err := auth.Require(ctx, "order.GetItems")
	if err != nil {
		return nil, err
	}
	if _, err := s.getOwned(ctx, actor, orderID, "order.GetItems"); err != nil {
		return nil, err
	}
	return s.repo.GetItems(ctx, orderID)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	if _, err := auth.RequireAdmin(ctx, "order.Stats"); err != nil {
		return nil, err
	}
	return s.repo.Stats(ctx)
}
