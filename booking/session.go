// Package booking implements the seat-selection engine: a per-session
// seat grid, a capped ordered selection, price totals and checkout.
package booking

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"ticketwise-cli/model"
)

const (
	// MaxSeats is the selection cap per booking session.
	MaxSeats = 6

	rowLabels    = "ABCDEFGH"
	vipRows      = 2
	occupiedRate = 0.2
)

var (
	PriceStandard = decimal.NewFromInt(15)
	PriceVIP      = decimal.NewFromInt(25)

	// FeePerSeat is the fixed booking fee added per selected seat.
	FeePerSeat = decimal.RequireFromString("1.5")
)

var (
	ErrSelectionFull    = fmt.Errorf("you can only select up to %d seats", MaxSeats)
	ErrNoSeatsSelected  = errors.New("select at least one seat to check out")
	ErrUnknownSeat      = errors.New("unknown seat")
	errInvalidDimension = errors.New("seat map dimensions must be positive")
)

// Occupancy decides, seat by seat at generation time, whether a seat
// starts out occupied. Injecting it keeps grids reproducible in tests.
type Occupancy func() bool

// RandomOccupancy marks each seat occupied with a fixed probability,
// drawn from the given source.
func RandomOccupancy(rng *rand.Rand) Occupancy {
	return func() bool {
		return rng.Float64() < occupiedRate
	}
}

// Session owns one seat map and the selection made against it. It lives
// for a single booking flow and is not safe for concurrent use; the UI
// drives it from a single event loop.
type Session struct {
	Seats []model.Seat

	index    map[string]int
	selected []string
}

// NewSession generates a rows×cols seat map. Rows are labeled A..H, so
// at most 8 rows are supported; the last two rows are VIP. A nil
// occupancy source means time-seeded random occupancy.
func NewSession(rows, cols int, occupied Occupancy) (*Session, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errInvalidDimension
	}
	if rows > len(rowLabels) {
		return nil, fmt.Errorf("at most %d rows supported, got %d", len(rowLabels), rows)
	}
	if occupied == nil {
		occupied = RandomOccupancy(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	s := &Session{
		Seats: make([]model.Seat, 0, rows*cols),
		index: make(map[string]int, rows*cols),
	}
	for r := 0; r < rows; r++ {
		row := string(rowLabels[r])
		vip := r >= rows-vipRows
		for n := 1; n <= cols; n++ {
			seat := model.Seat{
				ID:     fmt.Sprintf("%s%d", row, n),
				Row:    row,
				Number: n,
				Status: model.SeatAvailable,
				Class:  model.SeatStandard,
				Price:  PriceStandard,
			}
			if vip {
				seat.Class = model.SeatVIP
				seat.Price = PriceVIP
			}
			if occupied() {
				seat.Status = model.SeatOccupied
			}
			s.index[seat.ID] = len(s.Seats)
			s.Seats = append(s.Seats, seat)
		}
	}
	return s, nil
}

// Toggle flips the selection state of a seat. Occupied seats are
// silently ignored. Deselection is always permitted; selection is
// refused with ErrSelectionFull once the cap is reached.
func (s *Session) Toggle(id string) error {
	i, ok := s.index[id]
	if !ok {
		return ErrUnknownSeat
	}
	switch s.Seats[i].Status {
	case model.SeatOccupied:
		return nil
	case model.SeatSelected:
		s.Seats[i].Status = model.SeatAvailable
		for j, sel := range s.selected {
			if sel == id {
				s.selected = append(s.selected[:j], s.selected[j+1:]...)
				break
			}
		}
		return nil
	default:
		if len(s.selected) >= MaxSeats {
			return ErrSelectionFull
		}
		s.Seats[i].Status = model.SeatSelected
		s.selected = append(s.selected, id)
		return nil
	}
}

// Selected returns the selected seats in selection order.
func (s *Session) Selected() []model.Seat {
	seats := make([]model.Seat, 0, len(s.selected))
	for _, id := range s.selected {
		seats = append(seats, s.Seats[s.index[id]])
	}
	return seats
}

// Seat looks up a seat by id.
func (s *Session) Seat(id string) (model.Seat, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Seat{}, false
	}
	return s.Seats[i], true
}

// Totals computes the selection subtotal, the per-seat booking fee and
// their sum. Values are exact; rounding is left to the presentation layer.
func (s *Session) Totals() (subtotal, fee, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, id := range s.selected {
		subtotal = subtotal.Add(s.Seats[s.index[id]].Price)
	}
	fee = FeePerSeat.Mul(decimal.NewFromInt(int64(len(s.selected))))
	return subtotal, fee, subtotal.Add(fee)
}
