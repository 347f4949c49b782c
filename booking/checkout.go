package booking

import (
	"github.com/google/uuid"

	"ticketwise-cli/model"
)

// qrCodePlaceholder fills the code field until ticket rendering exists.
const qrCodePlaceholder = "mock-qr-code-string"

// Store is the persistence port for confirmed bookings.
type Store interface {
	Append(model.Booking) error
}

// CheckoutContext carries the item and slot details the storefront
// resolved before opening the seat map.
type CheckoutContext struct {
	ItemID string
	Title  string
	Image  string
	Date   string
	Time   string
	Venue  string
}

// Checkout snapshots the current selection into a Booking and appends it
// to the store. It refuses an empty selection and persists nothing in
// that case. There is no rollback: once appended, the booking stands.
func (s *Session) Checkout(ctx CheckoutContext, store Store) (model.Booking, error) {
	seats := s.Selected()
	if len(seats) == 0 {
		return model.Booking{}, ErrNoSeatsSelected
	}

	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label())
	}
	_, _, total := s.Totals()

	b := model.Booking{
		ID:          uuid.NewString(),
		EventID:     ctx.ItemID,
		EventTitle:  ctx.Title,
		EventImage:  ctx.Image,
		Seats:       labels,
		TotalAmount: total,
		Date:        ctx.Date,
		Time:        ctx.Time,
		Venue:       ctx.Venue,
		QRCode:      qrCodePlaceholder,
	}
	if err := store.Append(b); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}
