package graph

import (
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/order"

	"github.com/graphql-go/graphql"
)

var orderStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "OrderStatus",
	Values: graphql.EnumValueConfigMap{
		"PENDING":   &graphql.EnumValueConfig{Value: order.StatusPending},
		"CONFIRMED": &graphql.EnumValueConfig{Value: order.StatusConfirmed},
		"SHIPPED":   &graphql.EnumValueConfig{Value: order.StatusShipped},
		"COMPLETED": &graphql.EnumValueConfig{Value: order.StatusCompleted},
		"CANCELLED": &graphql.EnumValueConfig{Value: order.StatusCancelled},
	},
})

var roleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Role",
	Values: graphql.EnumValueConfigMap{
		"USER":  &graphql.EnumValueConfig{Value: auth.RoleUser},
		"ADMIN": &graphql.EnumValueConfig{Value: auth.RoleAdmin},
	},
})

/* ---------- OBJECTS ---------- */

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"image":       &graphql.Field{Type: graphql.String},
		"stock":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"size":        &graphql.Field{Type: graphql.String},
		"color":       &graphql.Field{Type: graphql.String},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"orderId":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"quantity":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"price":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"size":      &graphql.Field{Type: graphql.String},
		"color":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var slipStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SlipStatus",
	Fields: graphql.Fields{
		"url":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"verified": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var paymentSlipType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PaymentSlip",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"orderId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"fileUrl":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fileName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"uploadedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"verified":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"verifiedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var statusCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StatusCount",
	Fields: graphql.Fields{
		"status": &graphql.Field{Type: graphql.NewNonNull(orderStatusEnum)},
		"count":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var orderStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderStats",
	Fields: graphql.Fields{
		"totalOrders": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"revenue":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"byStatus":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(statusCountType)))},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"openId":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":         &graphql.Field{Type: graphql.String},
		"email":        &graphql.Field{Type: graphql.String},
		"loginMethod":  &graphql.Field{Type: graphql.String},
		"role":         &graphql.Field{Type: graphql.NewNonNull(roleEnum)},
		"lastSignedIn": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var createOrderResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderResult",
	Fields: graphql.Fields{
		"orderId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var logoutResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LogoutResult",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

/* ---------- INPUTS ---------- */

var orderItemInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"price":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"size":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"color":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createOrderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"studentName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"studentRoom":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"studentNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"studentId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"items":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemInputType)))},
		"totalPrice":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"notes":         &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"image":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stock":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"size":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"color":       &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
