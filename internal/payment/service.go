package payment

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/metrics"
	"uniformshop-be/internal/notify"
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/storage"

	"go.uber.org/zap"
)

// OrderReader loads an order on behalf of the acting user, enforcing
// owner-or-admin access.
type OrderReader interface {
	GetByID(ctx context.Context, id int) (*order.Order, error)
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)
	GetLatestForOrder(ctx context.Context, orderID int) (*Slip, error)
	ListAll(ctx context.Context) ([]Slip, error)
	Verify(ctx context.Context, slipID int) (*Slip, error)
	Open(ctx context.Context, key string) ([]byte, error)
}

type service struct {
	repo     Repository
	orders   OrderReader
	disk     storage.Disk
	notifier notify.Sender
	maxBytes int64
	now      func() time.Time
}

func NewService(
	repo Repository,
	orders OrderReader,
	disk storage.Disk,
	notifier notify.Sender,
	maxBytes int64,
) Service {
	return &service{
		repo:     repo,
		orders:   orders,
		disk:     disk,
		notifier: notifier,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

var allowedMimeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/heic":      true,
	"application/pdf": true,
}

// SlipKey builds the storage key for an uploaded slip.
func SlipKey(orderID int, at time.Time, fileName string) string {
	return fmt.Sprintf("%s%d-%d-%s", SlipKeyPrefix, orderID, at.UnixMilli(), SanitizeFileName(fileName))
}

// SanitizeFileName keeps letters (with their marks), digits and ._- from the
// base name; everything else becomes an underscore.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "slip"
	}
	return out
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	timer := metrics.StartTimer("payment.Upload")
	defer timer.ObserveDuration()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Upload"),
		zap.Int("order_id", in.OrderID),
	)

	if _, err := auth.Require(ctx, "payment.Upload"); err != nil {
		return nil, err
	}

	/* ---------- VALIDATION ---------- */

	if in.OrderID <= 0 {
		return nil, apperr.Validation("payment.Upload", "ต้องระบุคำสั่งซื้อ")
	}
	if len(in.Content) == 0 || strings.TrimSpace(in.FileName) == "" {
		return nil, apperr.Validation("payment.Upload", "ต้องแนบไฟล์สลิป")
	}
	if s.maxBytes > 0 && int64(len(in.Content)) > s.maxBytes {
		return nil, apperr.Validation("payment.Upload", "ไฟล์มีขนาดใหญ่เกินไป")
	}
	if !allowedMimeTypes[in.MimeType] {
		return nil, apperr.Validation("payment.Upload", "ชนิดไฟล์ไม่รองรับ")
	}

	o, err := s.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	/* ---------- STORE ---------- */

	key := SlipKey(in.OrderID, s.now(), in.FileName)

	url, err := s.disk.Put(ctx, key, in.Content, in.MimeType)
	if err != nil {
		log.Error("failed to store payment slip", zap.String("key", key), zap.Error(err))
		metrics.SlipUploads.WithLabelValues("storage_error").Inc()
		return nil, apperr.Storage("payment.Upload", err)
	}

	/* ---------- RECORD ---------- */

	// The object is not removed if the insert fails.
	slip, err := s.repo.Create(ctx, in.OrderID, url, in.FileName)
	if err != nil {
		log.Error("stored slip but failed to record it", zap.String("key", key), zap.Error(err))
		metrics.SlipUploads.WithLabelValues("db_error").Inc()
		if errors.Is(err, apperr.ErrPersistence) {
			return nil, err
		}
		return nil, apperr.Persistence("payment.Upload", err)
	}

	metrics.SlipUploads.WithLabelValues("success").Inc()
	log.Info("payment slip uploaded", zap.Int("slip_id", slip.ID), zap.String("key", key))

	/* ---------- NOTIFY ---------- */

	studentName := in.StudentName
	if strings.TrimSpace(studentName) == "" {
		studentName = o.StudentName
	}
	sent := s.notifier.Send(context.WithoutCancel(ctx), notify.SlipUploadedMessage(in.OrderID, studentName, in.FileName, s.now()))
	log.Info("slip notification dispatched", zap.Bool("sent", sent))

	return &UploadResult{Success: true, URL: url, Slip: slip}, nil
}

// GetLatestForOrder returns nil when the order has no slip yet.
func (s *service) GetLatestForOrder(ctx context.Context, orderID int) (*Slip, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	slip, err := s.repo.LatestForOrder(ctx, orderID)
	if errors.Is(err, ErrSlipNotFound) {
		return nil, nil
	}
	return slip, err
}

func (s *service) ListAll(ctx context.Context) ([]Slip, error) {
	if _, err := auth.RequireAdmin(ctx, "payment.ListAll"); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}

func (s *service) Verify(ctx context.Context, slipID int) (*Slip, error) {
	actor, err := auth.RequireAdmin(ctx, "payment.Verify")
	if err != nil {
		return nil, err
	}

	slip, err := s.repo.Verify(ctx, slipID, s.now())
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("payment slip verified",
		zap.Int("slip_id", slipID),
		zap.Int("order_id", slip.OrderID),
		zap.Int("admin_id", actor.UserID),
	)
	return slip, nil
}

// Open returns stored slip bytes. Keys outside the slip prefix are not served.
func (s *service) Open(ctx context.Context, key string) ([]byte, error) {
	if !strings.HasPrefix(key, SlipKeyPrefix) {
		return nil, storage.ErrNotFound
	}
	return s.disk.Get(ctx, key)
}
