package graph

import (
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/payment"
	"uniformshop-be/internal/product"
	"uniformshop-be/internal/user"

	"github.com/graphql-go/graphql"
)

type Resolver struct {
	ProductSvc product.Service
	OrderSvc   order.Service
	PaymentSvc payment.Service
	UserSvc    user.Service

	// SecureCookie marks the cleared session cookie Secure on logout.
	SecureCookie bool
}

func NewSchema(r *Resolver) (graphql.Schema, error) {
	orderType := r.orderType()

	query := graphql.Fields{}
	mutation := graphql.Fields{}

	merge(query, r.productQueries())
	merge(query, r.orderQueries(orderType))
	merge(query, r.paymentQueries())
	merge(query, r.userQueries())

	merge(mutation, r.productMutations())
	merge(mutation, r.orderMutations(orderType))
	merge(mutation, r.paymentMutations())
	merge(mutation, r.userMutations())

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: query}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutation}),
	})
}

func merge(dst, src graphql.Fields) {
	for name, f := range src {
		dst[name] = f
	}
}

func idArg(name string) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		name: &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}
