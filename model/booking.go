package model

import "github.com/shopspring/decimal"

// Booking is a confirmed ticket purchase persisted to the local store.
// The JSON field names are part of the on-disk format.
type Booking struct {
	ID          string          `json:"id"`
	EventID     string          `json:"eventId"`
	EventTitle  string          `json:"eventTitle"`
	EventImage  string          `json:"eventImage"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Venue       string          `json:"venue"`
	QRCode      string          `json:"qrCode"`
}
