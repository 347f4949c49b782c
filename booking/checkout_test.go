package booking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"ticketwise-cli/model"
)

type memStore struct {
	bookings []model.Booking
	err      error
}

func (m *memStore) Append(b model.Booking) error {
	if m.err != nil {
		return m.err
	}
	m.bookings = append(m.bookings, b)
	return nil
}

func TestCheckout_RefusesEmptySelection(t *testing.T) {
	s := newTestSession(t)
	store := &memStore{}

	_, err := s.Checkout(CheckoutContext{ItemID: "m1"}, store)
	if !errors.Is(err, ErrNoSeatsSelected) {
		t.Fatalf("expected ErrNoSeatsSelected, got %v", err)
	}
	if len(store.bookings) != 0 {
		t.Fatalf("expected nothing persisted, got %d bookings", len(store.bookings))
	}
}

func TestCheckout_SnapshotsSelection(t *testing.T) {
	s := newTestSession(t)
	for _, id := range []string{"A1", "G3"} {
		if err := s.Toggle(id); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	store := &memStore{}

	ctx := CheckoutContext{
		ItemID: "m1",
		Title:  "Cyberpunk Horizons",
		Image:  "https://picsum.photos/300/450?random=1",
		Date:   "Today",
		Time:   "7:15 PM",
		Venue:  "City Cinema, Hall 3",
	}
	b, err := s.Checkout(ctx, store)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if b.ID == "" {
		t.Fatal("expected a generated booking id")
	}
	if b.EventID != "m1" || b.EventTitle != ctx.Title || b.Venue != ctx.Venue {
		t.Fatalf("unexpected booking context: %+v", b)
	}
	if len(b.Seats) != 2 || b.Seats[0] != "A1" || b.Seats[1] != "G3" {
		t.Fatalf("unexpected seat labels: %v", b.Seats)
	}
	if !b.TotalAmount.Equal(decimal.NewFromInt(43)) {
		t.Fatalf("expected total 43, got %s", b.TotalAmount)
	}
	if b.QRCode == "" {
		t.Fatal("expected placeholder code to be set")
	}
	if len(store.bookings) != 1 || store.bookings[0].ID != b.ID {
		t.Fatalf("expected booking persisted once, got %+v", store.bookings)
	}
}

func TestCheckout_PropagatesStoreError(t *testing.T) {
	s := newTestSession(t)
	if err := s.Toggle("A1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	store := &memStore{err: errors.New("disk full")}

	if _, err := s.Checkout(CheckoutContext{ItemID: "e1"}, store); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
