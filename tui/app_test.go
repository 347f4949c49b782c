package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ticketwise-cli/booking"
	"ticketwise-cli/catalog"
	"ticketwise-cli/config"
	"ticketwise-cli/model"
	"ticketwise-cli/service"
)

type memBookings struct {
	bookings []model.Booking
}

func (m *memBookings) Append(b model.Booking) error {
	m.bookings = append(m.bookings, b)
	return nil
}

func newTestModel(t *testing.T) *appModel {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	m := New(config.Config{}).(appModel)
	return &m
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newTestModel(t)

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.catalogList.FilterValue(); got != "c" {
		t.Fatalf("expected filter value to be %q, got %q", "c", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.catalogList.FilterValue(); got != "cy" {
		t.Fatalf("expected filter value to be %q, got %q", "cy", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newTestModel(t)

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.catalogList.FilterValue(); got != "c" {
		t.Fatalf("expected filter value to be %q, got %q", "c", got)
	}
}

func TestHandleFilterInput_IgnoredOutsideListStates(t *testing.T) {
	m := newTestModel(t)
	m.state = stateSeatMap

	if m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}) {
		t.Fatal("expected filter input to be ignored on the seat map")
	}
}

func TestUpdate_StaleMatchResultIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.state = stateMatching
	m.matchSeq = 2

	stale := matchMsg{seq: 1, result: service.MatchResult{InterpretedIntent: "old"}}
	next, _ := m.Update(stale)
	updated := next.(appModel)
	if updated.state != stateMatching {
		t.Fatalf("expected stale result to be dropped, state is %d", updated.state)
	}
	if updated.match != nil {
		t.Fatal("expected no match to be recorded")
	}

	fresh := matchMsg{seq: 2, result: service.MatchResult{InterpretedIntent: "new"}}
	next, _ = updated.Update(fresh)
	updated = next.(appModel)
	if updated.state != stateResults {
		t.Fatalf("expected results state, got %d", updated.state)
	}
	if updated.match == nil || updated.match.InterpretedIntent != "new" {
		t.Fatalf("expected the fresh result, got %+v", updated.match)
	}
}

func TestOpenSeatMap_BuildsFullGrid(t *testing.T) {
	m := newTestModel(t)
	m.state = stateShowtimes

	next, _, handled := m.openSeatMap("7:15 PM")
	if !handled {
		t.Fatal("expected seat map to open")
	}
	updated := next.(appModel)
	if updated.state != stateSeatMap {
		t.Fatalf("expected seat map state, got %d", updated.state)
	}
	if updated.session == nil || len(updated.session.Seats) != seatRows*seatCols {
		t.Fatalf("expected a full grid, got %+v", updated.session)
	}
	if updated.showtime != "7:15 PM" {
		t.Fatalf("unexpected showtime: %q", updated.showtime)
	}
}

func TestCheckout_EmptySelectionShowsNotice(t *testing.T) {
	m := newTestModel(t)
	mem := &memBookings{}
	m.bookings = mem

	next, _, _ := m.openSeatMap("7:15 PM")
	updated := next.(appModel)

	msg := updated.checkoutCmd()()
	result, ok := msg.(checkoutMsg)
	if !ok {
		t.Fatalf("expected checkoutMsg, got %T", msg)
	}
	if result.err == nil {
		t.Fatal("expected an error for an empty selection")
	}

	afterAny, _ := updated.Update(result)
	after := afterAny.(appModel)
	if after.state != stateSeatMap {
		t.Fatalf("expected to stay on the seat map, got %d", after.state)
	}
	if after.notice == "" {
		t.Fatal("expected a notice explaining the refusal")
	}
	if len(mem.bookings) != 0 {
		t.Fatalf("expected nothing persisted, got %+v", mem.bookings)
	}
}

func TestCheckout_ConfirmsAndShowsTicket(t *testing.T) {
	m := newTestModel(t)
	mem := &memBookings{}
	m.bookings = mem
	m.item = mustFindItem(t, "m1")

	next, _, _ := m.openSeatMap("7:15 PM")
	updated := next.(appModel)

	// Pick whatever seats are free; occupancy is random.
	picked := 0
	for _, seat := range updated.session.Seats {
		if seat.Status != model.SeatAvailable {
			continue
		}
		if err := updated.session.Toggle(seat.ID); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		picked++
		if picked == 2 {
			break
		}
	}
	if picked != 2 {
		t.Fatal("expected at least two free seats in the grid")
	}

	msg := updated.checkoutCmd()()
	result, ok := msg.(checkoutMsg)
	if !ok {
		t.Fatalf("expected checkoutMsg, got %T", msg)
	}
	if result.err != nil {
		t.Fatalf("expected nil error, got %v", result.err)
	}

	afterAny, _ := updated.Update(result)
	after := afterAny.(appModel)
	if after.state != stateTicket {
		t.Fatalf("expected ticket state, got %d", after.state)
	}
	if after.ticket.EventTitle != "Cyberpunk Horizons" || after.ticket.Venue != "City Cinema, Hall 3" {
		t.Fatalf("unexpected ticket: %+v", after.ticket)
	}
	if len(after.ticket.Seats) != 2 {
		t.Fatalf("expected 2 seats on the ticket, got %v", after.ticket.Seats)
	}
	if len(mem.bookings) != 1 {
		t.Fatalf("expected booking persisted once, got %+v", mem.bookings)
	}
	if after.session != nil {
		t.Fatal("expected the session to be cleared after checkout")
	}
}

func TestGoBack_FromResultsReturnsToDiscover(t *testing.T) {
	m := newTestModel(t)
	m.state = stateResults

	updated := m.goBack()
	if updated.state != stateDiscover {
		t.Fatalf("expected discover state, got %d", updated.state)
	}
}

func TestRenderSeatMap_ShowsTotals(t *testing.T) {
	m := newTestModel(t)
	m.item = mustFindItem(t, "m1")

	session, err := booking.NewSession(seatRows, seatCols, func() bool { return false })
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	m.session = session
	m.state = stateSeatMap

	if err := session.Toggle("A1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := session.Toggle("G3"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	view := m.renderSeatMap()
	for _, want := range []string{"SCREEN", "$40.00", "$3.00", "$43.00", "Row A, Seat 1", "Row G, Seat 3 (VIP)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func mustFindItem(t *testing.T, id string) catalog.Item {
	t.Helper()
	item, ok := catalog.Find(id)
	if !ok {
		t.Fatalf("unknown catalog id %q", id)
	}
	return item
}
