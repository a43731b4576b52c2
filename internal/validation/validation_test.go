package validation

import (
	"testing"

	"uniformshop-be/internal/apperr"

	"github.com/stretchr/testify/assert"
)

type line struct {
	Quantity int `validate:"min=1"`
}

type form struct {
	Name  string `validate:"notblank"`
	Price int    `validate:"gte=0"`
	Lines []line `validate:"min=1,dive"`
}

var msgs = Messages{
	"Name.notblank": "ต้องระบุชื่อ",
	"Price":         "ราคาต้องไม่ติดลบ",
	"Lines.min":     "ต้องมีอย่างน้อยหนึ่งรายการ",
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := Struct("test", form{Name: "shirt", Lines: []line{{Quantity: 1}}}, msgs)
		assert.NoError(t, err)
	})

	t.Run("Blank name", func(t *testing.T) {
		err := Struct("test", form{Name: "   ", Lines: []line{{Quantity: 1}}}, msgs)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		msg, _ := apperr.UserMessage(err)
		assert.Equal(t, "ต้องระบุชื่อ", msg)
	})

	t.Run("Field-level message", func(t *testing.T) {
		err := Struct("test", form{Name: "a", Price: -1, Lines: []line{{Quantity: 1}}}, msgs)
		msg, _ := apperr.UserMessage(err)
		assert.Equal(t, "ราคาต้องไม่ติดลบ", msg)
	})

	t.Run("Empty slice", func(t *testing.T) {
		err := Struct("test", form{Name: "a"}, msgs)
		msg, _ := apperr.UserMessage(err)
		assert.Equal(t, "ต้องมีอย่างน้อยหนึ่งรายการ", msg)
	})

	t.Run("Unmapped rule falls back", func(t *testing.T) {
		err := Struct("test", form{Name: "a", Lines: []line{{Quantity: 0}}}, msgs)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		msg, _ := apperr.UserMessage(err)
		assert.Equal(t, fallbackMessage+": Quantity", msg)
	})
}
