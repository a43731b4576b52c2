package graph

import (
	"github.com/graphql-go/graphql"
)

func (r *Resolver) productQueries() graphql.Fields {
	return graphql.Fields{
		"products": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				products, err := r.ProductSvc.List(p.Context)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLProducts(products), nil
			},
		},
		"product": &graphql.Field{
			Type: productType,
			Args: idArg("id"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				prod, err := r.ProductSvc.GetByID(p.Context, p.Args["id"].(int))
				if err != nil {
					return nil, present(p.Context, err)
				}
				if prod == nil {
					return nil, nil
				}
				return toGraphQLProduct(prod), nil
			},
		},
	}
}

/* ---------- ADMIN ---------- */

func (r *Resolver) productMutations() graphql.Fields {
	inputArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)}

	return graphql.Fields{
		"createProduct": &graphql.Field{
			Type: graphql.NewNonNull(productType),
			Args: graphql.FieldConfigArgument{"input": inputArg},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in, _ := p.Args["input"].(map[string]interface{})
				prod, err := r.ProductSvc.Create(p.Context, toProductInput(in))
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLProduct(prod), nil
			},
		},
		"updateProduct": &graphql.Field{
			Type: graphql.NewNonNull(productType),
			Args: graphql.FieldConfigArgument{
				"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"input": inputArg,
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in, _ := p.Args["input"].(map[string]interface{})
				prod, err := r.ProductSvc.Update(p.Context, p.Args["id"].(int), toProductInput(in))
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLProduct(prod), nil
			},
		},
		"deleteProduct": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: idArg("id"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := r.ProductSvc.Delete(p.Context, p.Args["id"].(int)); err != nil {
					return nil, present(p.Context, err)
				}
				return true, nil
			},
		},
	}
}
