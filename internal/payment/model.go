package payment

import (
	"time"
)

// SlipKeyPrefix namespaces slip objects in storage.
const SlipKeyPrefix = "payment-slips/"

type Slip struct {
	ID         int
	OrderID    int
	FileURL    string
	FileName   string
	UploadedAt time.Time
	Verified   bool
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

type UploadInput struct {
	OrderID     int
	Content     []byte
	FileName    string
	MimeType    string
	StudentName string
}

type UploadResult struct {
	Success bool
	URL     string
	Slip    *Slip
}
