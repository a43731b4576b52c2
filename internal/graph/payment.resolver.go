package graph

import (
	"github.com/graphql-go/graphql"
)

func (r *Resolver) paymentQueries() graphql.Fields {
	return graphql.Fields{
		"slipForOrder": &graphql.Field{
			Type: slipStatusType,
			Args: idArg("orderId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				slip, err := r.PaymentSvc.GetLatestForOrder(p.Context, p.Args["orderId"].(int))
				if err != nil {
					return nil, present(p.Context, err)
				}
				if slip == nil {
					return nil, nil
				}
				return map[string]interface{}{
					"url":      slip.FileURL,
					"verified": slip.Verified,
				}, nil
			},
		},
		"paymentSlip": &graphql.Field{
			Type: paymentSlipType,
			Args: idArg("orderId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				slip, err := r.PaymentSvc.GetLatestForOrder(p.Context, p.Args["orderId"].(int))
				if err != nil {
					return nil, present(p.Context, err)
				}
				if slip == nil {
					return nil, nil
				}
				return toGraphQLSlip(slip), nil
			},
		},
		"allPaymentSlips": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(paymentSlipType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				slips, err := r.PaymentSvc.ListAll(p.Context)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLSlips(slips), nil
			},
		},
	}
}

func (r *Resolver) paymentMutations() graphql.Fields {
	return graphql.Fields{
		"verifyPaymentSlip": &graphql.Field{
			Type: graphql.NewNonNull(paymentSlipType),
			Args: idArg("slipId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				slip, err := r.PaymentSvc.Verify(p.Context, p.Args["slipId"].(int))
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLSlip(slip), nil
			},
		},
	}
}
