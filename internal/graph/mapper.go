package graph

import (
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/payment"
	"uniformshop-be/internal/product"
	"uniformshop-be/internal/user"
)

// Resolved objects are plain maps keyed by GraphQL field name so the
// default field resolver can read them.

func toGraphQLProduct(p *product.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image":       p.Image,
		"stock":       p.Stock,
		"size":        p.Size,
		"color":       p.Color,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

func toGraphQLProducts(ps []product.Product) []interface{} {
	list := make([]interface{}, 0, len(ps))
	for i := range ps {
		list = append(list, toGraphQLProduct(&ps[i]))
	}
	return list
}

func toGraphQLOrder(o *order.Order) map[string]interface{} {
	return map[string]interface{}{
		"id":            o.ID,
		"userId":        o.UserID,
		"studentName":   o.StudentName,
		"studentRoom":   o.StudentRoom,
		"studentNumber": o.StudentNumber,
		"studentId":     o.StudentID,
		"totalPrice":    o.TotalPrice,
		"status":        o.Status,
		"notes":         o.Notes,
		"createdAt":     o.CreatedAt,
		"updatedAt":     o.UpdatedAt,
	}
}

func toGraphQLOrders(os []order.Order) []interface{} {
	list := make([]interface{}, 0, len(os))
	for i := range os {
		list = append(list, toGraphQLOrder(&os[i]))
	}
	return list
}

func toGraphQLOrderItems(items []order.OrderItem) []interface{} {
	list := make([]interface{}, 0, len(items))
	for _, it := range items {
		list = append(list, map[string]interface{}{
			"id":        it.ID,
			"orderId":   it.OrderID,
			"productId": it.ProductID,
			"quantity":  it.Quantity,
			"price":     it.Price,
			"size":      it.Size,
			"color":     it.Color,
			"createdAt": it.CreatedAt,
		})
	}
	return list
}

func toGraphQLSlip(s *payment.Slip) map[string]interface{} {
	return map[string]interface{}{
		"id":         s.ID,
		"orderId":    s.OrderID,
		"fileUrl":    s.FileURL,
		"fileName":   s.FileName,
		"uploadedAt": s.UploadedAt,
		"verified":   s.Verified,
		"verifiedAt": s.VerifiedAt,
	}
}

func toGraphQLSlips(slips []payment.Slip) []interface{} {
	list := make([]interface{}, 0, len(slips))
	for i := range slips {
		list = append(list, toGraphQLSlip(&slips[i]))
	}
	return list
}

func toGraphQLStats(s *order.Stats) map[string]interface{} {
	byStatus := make([]interface{}, 0, len(order.Statuses))
	for _, st := range order.Statuses {
		byStatus = append(byStatus, map[string]interface{}{
			"status": st,
			"count":  s.ByStatus[st],
		})
	}
	return map[string]interface{}{
		"totalOrders": s.TotalOrders,
		"revenue":     s.Revenue,
		"byStatus":    byStatus,
	}
}

func toGraphQLUser(u *user.User) map[string]interface{} {
	return map[string]interface{}{
		"id":           u.ID,
		"openId":       u.OpenID,
		"name":         u.Name,
		"email":        u.Email,
		"loginMethod":  u.LoginMethod,
		"role":         u.Role,
		"lastSignedIn": u.LastSignedIn,
	}
}

/* ---------- INPUTS ---------- */

func toCreateOrderInput(m map[string]interface{}) order.CreateOrderInput {
	in := order.CreateOrderInput{
		StudentName:   stringField(m, "studentName"),
		StudentRoom:   stringField(m, "studentRoom"),
		StudentNumber: stringField(m, "studentNumber"),
		StudentID:     stringField(m, "studentId"),
		TotalPrice:    intField(m, "totalPrice"),
		Notes:         optStringField(m, "notes"),
	}

	raw, _ := m["items"].([]interface{})
	for _, r := range raw {
		it, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		in.Items = append(in.Items, order.ItemInput{
			ProductID: intField(it, "productId"),
			Quantity:  intField(it, "quantity"),
			Price:     intField(it, "price"),
			Size:      optStringField(it, "size"),
			Color:     optStringField(it, "color"),
		})
	}
	return in
}

func toProductInput(m map[string]interface{}) product.Input {
	return product.Input{
		Name:        stringField(m, "name"),
		Description: optStringField(m, "description"),
		Price:       intField(m, "price"),
		Image:       optStringField(m, "image"),
		Stock:       intField(m, "stock"),
		Size:        optStringField(m, "size"),
		Color:       optStringField(m, "color"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func optStringField(m map[string]interface{}, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func intField(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}
