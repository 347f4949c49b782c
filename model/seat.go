package model

import "github.com/shopspring/decimal"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatSelected  SeatStatus = "selected"
)

type SeatClass string

const (
	SeatStandard SeatClass = "standard"
	SeatVIP      SeatClass = "vip"
)

// Seat is a single seat in a hall. ID is the row letter plus the 1-based
// seat number ("A1", "G10") and is unique within a seat map.
type Seat struct {
	ID     string          `json:"id"`
	Row    string          `json:"row"`
	Number int             `json:"number"`
	Status SeatStatus      `json:"status"`
	Class  SeatClass       `json:"type"`
	Price  decimal.Decimal `json:"price"`
}

// Label is the printable seat label used on tickets.
func (s Seat) Label() string {
	return s.ID
}
