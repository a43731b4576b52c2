package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleProduct() product.Product {
	size := "M"
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return product.Product{ID: 1, Name: "เสื้อนักเรียน", Price: 250, Stock: 10, Size: &size, CreatedAt: now, UpdatedAt: now}
}

func TestProductsQuery(t *testing.T) {
	t.Run("Lists products", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("List", mock.Anything).Return([]product.Product{sampleProduct()}, nil)

		res := tr.do(context.Background(), `{ products { id name price stock size description } }`, nil)

		list := data(t, res)["products"].([]interface{})
		require.Len(t, list, 1)
		p := list[0].(map[string]interface{})
		assert.Equal(t, 1, p["id"])
		assert.Equal(t, "เสื้อนักเรียน", p["name"])
		assert.Equal(t, "M", p["size"])
		assert.Nil(t, p["description"])
	})

	t.Run("Empty store", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("List", mock.Anything).Return([]product.Product{}, nil)

		res := tr.do(context.Background(), `{ products { id } }`, nil)

		assert.Empty(t, data(t, res)["products"])
	})
}

func TestProductQuery(t *testing.T) {
	t.Run("Found twice is identical", func(t *testing.T) {
		tr := newTestResolver(t)
		p := sampleProduct()
		tr.products.On("GetByID", mock.Anything, 1).Return(&p, nil)

		first := tr.do(context.Background(), `{ product(id: 1) { id name price createdAt } }`, nil)
		second := tr.do(context.Background(), `{ product(id: 1) { id name price createdAt } }`, nil)

		assert.Equal(t, data(t, first), data(t, second))
	})

	t.Run("Missing is null", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("GetByID", mock.Anything, 99).Return(nil, nil)

		res := tr.do(context.Background(), `{ product(id: 99) { id } }`, nil)

		assert.Nil(t, data(t, res)["product"])
	})
}

func TestProductMutations(t *testing.T) {
	input := map[string]interface{}{"name": "กางเกง", "price": 300, "stock": 5}

	t.Run("Create", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Create", mock.Anything, product.Input{Name: "กางเกง", Price: 300, Stock: 5}).
			Return(&product.Product{ID: 2, Name: "กางเกง", Price: 300, Stock: 5}, nil)

		res := tr.do(adminCtx(), `mutation($input: ProductInput!) { createProduct(input: $input) { id name } }`,
			map[string]interface{}{"input": input})

		created := data(t, res)["createProduct"].(map[string]interface{})
		assert.Equal(t, 2, created["id"])
	})

	t.Run("Create forbidden", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperr.Authorization("product.Create", "forbidden"))

		res := tr.do(userCtx(3), `mutation($input: ProductInput!) { createProduct(input: $input) { id } }`,
			map[string]interface{}{"input": input})

		msg, code := errorCode(t, res)
		assert.Equal(t, "forbidden", msg)
		assert.Equal(t, CodeForbidden, code)
	})

	t.Run("Create validation", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("product.Create", "ต้องระบุชื่อสินค้า"))

		res := tr.do(adminCtx(), `mutation { createProduct(input: {name: "", price: 1, stock: 1}) { id } }`, nil)

		msg, code := errorCode(t, res)
		assert.Equal(t, "ต้องระบุชื่อสินค้า", msg)
		assert.Equal(t, CodeValidation, code)
	})

	t.Run("Update", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Update", mock.Anything, 2, product.Input{Name: "กางเกง", Price: 300, Stock: 5}).
			Return(&product.Product{ID: 2, Name: "กางเกง"}, nil)

		res := tr.do(adminCtx(), `mutation($input: ProductInput!) { updateProduct(id: 2, input: $input) { id } }`,
			map[string]interface{}{"input": input})

		assert.NotNil(t, data(t, res)["updateProduct"])
	})

	t.Run("Delete not found", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Delete", mock.Anything, 9).Return(product.ErrProductNotFound)

		res := tr.do(adminCtx(), `mutation { deleteProduct(id: 9) }`, nil)

		msg, code := errorCode(t, res)
		assert.Equal(t, "not found", msg)
		assert.Equal(t, CodeNotFound, code)
	})

	t.Run("Delete hides internal errors", func(t *testing.T) {
		tr := newTestResolver(t)
		tr.products.On("Delete", mock.Anything, 9).
			Return(apperr.Persistence("product.Delete", errors.New("pq: connection refused")))

		res := tr.do(adminCtx(), `mutation { deleteProduct(id: 9) }`, nil)

		msg, code := errorCode(t, res)
		assert.Equal(t, internalMessage, msg)
		assert.Equal(t, CodeInternal, code)
	})
}
