package graph

import (
	"uniformshop-be/internal/order"

	"github.com/graphql-go/graphql"
)

// orderType carries a lazy items field, so it needs the order service.
func (r *Resolver) orderType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"userId":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"studentName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"studentRoom":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"studentNumber": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"studentId":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"totalPrice":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"status":        &graphql.Field{Type: graphql.NewNonNull(orderStatusEnum)},
			"notes":         &graphql.Field{Type: graphql.String},
			"createdAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"updatedAt":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					src, _ := p.Source.(map[string]interface{})
					id, _ := src["id"].(int)
					return r.resolveItems(p, id)
				},
			},
		},
	})
}

func (r *Resolver) resolveItems(p graphql.ResolveParams, orderID int) (interface{}, error) {
	items, err := r.OrderSvc.GetItems(p.Context, orderID)
	if err != nil {
		return nil, present(p.Context, err)
	}
	return toGraphQLOrderItems(items), nil
}

func (r *Resolver) orderQueries(orderType *graphql.Object) graphql.Fields {
	orderList := graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType)))

	return graphql.Fields{
		"order": &graphql.Field{
			Type: orderType,
			Args: idArg("id"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				o, err := r.OrderSvc.GetByID(p.Context, p.Args["id"].(int))
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLOrder(o), nil
			},
		},
		"myOrders": &graphql.Field{
			Type: orderList,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				orders, err := r.OrderSvc.ListMine(p.Context)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLOrders(orders), nil
			},
		},
		"allOrders": &graphql.Field{
			Type: orderList,
			Args: graphql.FieldConfigArgument{
				"status": &graphql.ArgumentConfig{Type: orderStatusEnum},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var status *order.Status
				if s, ok := p.Args["status"].(order.Status); ok {
					status = &s
				}
				orders, err := r.OrderSvc.ListAll(p.Context, status)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLOrders(orders), nil
			},
		},
		"orderItems": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemType))),
			Args: idArg("orderId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return r.resolveItems(p, p.Args["orderId"].(int))
			},
		},
		"orderStats": &graphql.Field{
			Type: graphql.NewNonNull(orderStatsType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				stats, err := r.OrderSvc.Stats(p.Context)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLStats(stats), nil
			},
		},
	}
}

func (r *Resolver) orderMutations(orderType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"createOrder": &graphql.Field{
			Type: graphql.NewNonNull(createOrderResultType),
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrderInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				in, _ := p.Args["input"].(map[string]interface{})
				res, err := r.OrderSvc.Create(p.Context, toCreateOrderInput(in))
				if err != nil {
					return nil, present(p.Context, err)
				}
				return map[string]interface{}{
					"orderId": res.OrderID,
					"success": res.Success,
				}, nil
			},
		},
		"updateOrderStatus": &graphql.Field{
			Type: graphql.NewNonNull(orderType),
			Args: graphql.FieldConfigArgument{
				"orderId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"status":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderStatusEnum)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				status, _ := p.Args["status"].(order.Status)
				o, err := r.OrderSvc.UpdateStatus(p.Context, p.Args["orderId"].(int), status)
				if err != nil {
					return nil, present(p.Context, err)
				}
				return toGraphQLOrder(o), nil
			},
		},
	}
}
