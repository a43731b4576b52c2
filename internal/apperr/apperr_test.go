package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		kind error
		code string
	}{
		{"authorization", Authorization("order.ListAll", "forbidden"), ErrAuthorization, "UNAUTHORIZED"},
		{"validation", Validation("order.Create", "ต้องระบุชื่อนักเรียน"), ErrValidation, "VALIDATION"},
		{"persistence", Persistence("order.Create", dbErr), ErrPersistence, "PERSISTENCE"},
		{"storage", Storage("payment.Upload", dbErr), ErrStorage, "STORAGE"},
		{"notification", Notification("notify.Send", dbErr), ErrNotification, "NOTIFICATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.code, Code(tt.err))

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
			assert.Equal(t, tt.code, Code(wrapped))
		})
	}
}

func TestPersistence_UnwrapsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Persistence("product.Create", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "product.Create: duplicate key", err.Error())
}

func TestUserMessage(t *testing.T) {
	msg, ok := UserMessage(fmt.Errorf("wrap: %w", Validation("order.Create", "ต้องระบุห้องเรียน")))
	assert.True(t, ok)
	assert.Equal(t, "ต้องระบุห้องเรียน", msg)

	_, ok = UserMessage(Persistence("order.Create", errors.New("boom")))
	assert.False(t, ok)

	_, ok = UserMessage(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "INTERNAL", Code(errors.New("plain")))
}
