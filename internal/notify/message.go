package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ColorBlue  = 3447003
	ColorGreen = 65280
)

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type Embed struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

type OrderLine struct {
	Name     string
	Quantity int
	Price    int // unit price, minor units
}

type OrderSummary struct {
	OrderID       int
	StudentName   string
	StudentRoom   string
	StudentNumber string
	StudentID     string
	TotalPrice    int
	Items         []OrderLine
}

// FormatBaht renders minor units as baht with two decimals, e.g. 58000 -> "580.00".
func FormatBaht(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func NewOrderMessage(s OrderSummary, at time.Time) Message {
	lines := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		lineTotal := int64(it.Price) * int64(it.Quantity)
		lines = append(lines, fmt.Sprintf("• %s x%d = %s บาท", it.Name, it.Quantity, FormatBaht(lineTotal)))
	}

	itemsText := strings.Join(lines, "\n")
	if itemsText == "" {
		itemsText = "ไม่มีรายการ"
	}

	return Message{
		Content: "🎉 **มีการสั่งซื้อใหม่!**",
		Embeds: []Embed{{
			Title: fmt.Sprintf("คำสั่งซื้อ #%d", s.OrderID),
			Color: ColorBlue,
			Fields: []Field{
				{Name: "👤 ชื่อนักเรียน", Value: s.StudentName, Inline: true},
				{Name: "🏫 ห้องเรียน", Value: s.StudentRoom, Inline: true},
				{Name: "📍 เลขที่", Value: s.StudentNumber, Inline: true},
				{Name: "🆔 เลขประจำตัว", Value: s.StudentID, Inline: true},
				{Name: "📦 รายการสินค้า", Value: itemsText},
				{Name: "💰 ราคารวม", Value: FormatBaht(int64(s.TotalPrice)) + " บาท"},
			},
			Timestamp: at.UTC().Format(time.RFC3339),
		}},
	}
}

func SlipUploadedMessage(orderID int, studentName, fileName string, at time.Time) Message {
	return Message{
		Content: "💳 **สลิปโอนเงินถูกอัปโหลด**",
		Embeds: []Embed{{
			Title: fmt.Sprintf("คำสั่งซื้อ #%d", orderID),
			Color: ColorGreen,
			Fields: []Field{
				{Name: "👤 ชื่อนักเรียน", Value: studentName},
				{Name: "📄 ชื่อไฟล์", Value: fileName},
			},
			Timestamp: at.UTC().Format(time.RFC3339),
		}},
	}
}
