package graph

import (
	"context"
	"errors"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/payment"
	"uniformshop-be/internal/product"
	"uniformshop-be/internal/user"

	"go.uber.org/zap"
)

const (
	CodeValidation   = "VALIDATION"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
)

const internalMessage = "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง"

// Error is what a client sees. It satisfies gqlerrors.ExtendedError so the
// code lands in the response's extensions.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func isNotFound(err error) bool {
	return errors.Is(err, order.ErrOrderNotFound) ||
		errors.Is(err, product.ErrProductNotFound) ||
		errors.Is(err, payment.ErrSlipNotFound) ||
		errors.Is(err, user.ErrUserNotFound)
}

// present maps a service error to a client error. Unexpected failures are
// logged with their cause and replaced by a generic message.
func present(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apperr.ErrValidation):
		msg, _ := apperr.UserMessage(err)
		return &Error{Message: msg, Code: CodeValidation}
	case errors.Is(err, apperr.ErrAuthorization):
		msg, _ := apperr.UserMessage(err)
		if msg == "forbidden" {
			return &Error{Message: msg, Code: CodeForbidden}
		}
		return &Error{Message: "unauthorized", Code: CodeUnauthorized}
	case isNotFound(err):
		return &Error{Message: "not found", Code: CodeNotFound}
	}

	logger.FromCtx(ctx).Error("graphql operation failed",
		zap.String("kind", apperr.Code(err)),
		zap.Error(err),
	)
	return &Error{Message: internalMessage, Code: CodeInternal}
}
