package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ticketwise-cli/booking"
	"ticketwise-cli/catalog"
	"ticketwise-cli/config"
	"ticketwise-cli/model"
	"ticketwise-cli/service"
	"ticketwise-cli/store"
)

type appState int

const (
	stateBrowse appState = iota
	stateDiscover
	stateMatching
	stateResults
	stateShowtimes
	stateSeatMap
	stateTicket
	stateBookings
	stateError
)

const (
	seatRows = 8
	seatCols = 10

	defaultVenue = "City Cinema, Hall 3"
	defaultDate  = "Today"
)

var showtimes = []string{"10:30 AM", "1:45 PM", "4:30 PM", "7:15 PM", "10:00 PM"}

var examplePrompts = []string{
	"Something fun for a date night this weekend",
	"I want an adrenaline rush - action or sports",
	"Relaxing evening with good music",
	"A movie that will make me think",
}

type appModel struct {
	matcher  *service.Matcher
	bookings booking.Store

	state     appState
	lastState appState
	err       error

	width  int
	height int

	catalogList  list.Model
	resultList   list.Model
	showtimeList list.Model
	bookingList  list.Model

	queryInput textinput.Model
	matchSeq   int
	match      *service.MatchResult
	recent     []string

	item     catalog.Item
	showtime string

	session   *booking.Session
	cursorRow int
	cursorCol int
	notice    string

	ticket model.Booking

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type matchMsg struct {
	seq    int
	result service.MatchResult
}

type bookingsMsg struct {
	bookings []model.Booking
	err      error
}

type checkoutMsg struct {
	booking model.Booking
	err     error
}

func New(cfg config.Config) tea.Model {
	var client *service.GeminiClient
	if cfg.HasGeminiKey() {
		client = service.NewGeminiClient(nil, cfg.GeminiAPIKey)
	}

	m := appModel{
		matcher:  service.NewMatcher(client, nil),
		bookings: store.Bookings{},
		state:    stateBrowse,
	}

	m.catalogList = newList("Movies & Events")
	m.resultList = newList("Recommendations")
	m.showtimeList = newList("Select Showtime")
	m.bookingList = newList("My Bookings")
	m.catalogList.SetItems(buildCatalogItems(catalog.Items()))

	ti := textinput.New()
	ti.Placeholder = "e.g., Something exciting for the weekend..."
	ti.CharLimit = 200
	ti.Width = 60
	m.queryInput = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateDiscover {
			return m.updateDiscoverInput(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateMatching {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = stateBrowse
		}
		m.state = stateError
		return m, nil

	case matchMsg:
		// A newer query may already be running; drop stale results.
		if msg.seq != m.matchSeq || m.state != stateMatching {
			return m, nil
		}
		result := msg.result
		m.match = &result
		m.resultList.SetItems(buildResultItems(result.Recommendations))
		m.resultList.Select(0)
		m.state = stateResults
		return m, nil

	case bookingsMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.bookingList.SetItems(buildBookingItems(msg.bookings))
		m.state = stateBookings
		return m, nil

	case checkoutMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		m.ticket = msg.booking
		m.session = nil
		m.notice = ""
		m.state = stateTicket
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateBrowse:
		m.catalogList, cmd = m.catalogList.Update(msg)
	case stateResults:
		m.resultList, cmd = m.resultList.Update(msg)
	case stateShowtimes:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateBrowse:
		return header + "\n\n" + m.catalogList.View()
	case stateDiscover:
		return header + "\n\n" + m.discoverView()
	case stateMatching:
		return header + "\n\n" + fmt.Sprintf("%s Finding the perfect events for you...", m.spinner.View())
	case stateResults:
		return header + "\n\n" + m.resultsView()
	case stateShowtimes:
		return header + "\n\n" + m.showtimeList.View()
	case stateSeatMap:
		return header + "\n\n" + m.renderSeatMap()
	case stateTicket:
		return header + "\n\n" + m.ticketView()
	case stateBookings:
		return header + "\n\n" + m.bookingList.View()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("TicketWise")
	sub := []string{}
	if m.item.ID() != "" && (m.state == stateShowtimes || m.state == stateSeatMap) {
		sub = append(sub, m.item.Title())
	}
	if m.showtime != "" && m.state == stateSeatMap {
		sub = append(sub, m.showtime)
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter"
	switch m.state {
	case stateBrowse:
		hints = "ctrl+c quit • enter showtimes • ctrl+f discover • ctrl+b bookings • type to filter"
	case stateDiscover:
		hints = "ctrl+c quit • esc back • enter search • 1-4 example prompts"
	case stateResults:
		hints = "ctrl+c quit • esc back • enter showtimes • ctrl+f new search"
	case stateShowtimes:
		hints = "ctrl+c quit • esc back • enter pick seats"
	case stateSeatMap:
		hints = "ctrl+c quit • esc back • arrows move • enter toggle seat • c checkout"
	case stateTicket:
		hints = "ctrl+c quit • enter back to browsing"
	case stateBookings:
		hints = "ctrl+c quit • esc back"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) discoverView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("What are you in the mood for?"))
	b.WriteString("\n")
	b.WriteString(hint("Tell us what you're looking for in plain English."))
	b.WriteString("\n\n")
	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")
	for i, prompt := range examplePrompts {
		b.WriteString(hint(fmt.Sprintf("%d. %s", i+1, prompt)))
		b.WriteString("\n")
	}
	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(hint("Recent: " + strings.Join(m.recent, " • ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) resultsView() string {
	if m.match == nil {
		return m.resultList.View()
	}
	intent := hint("We understood you're looking for:") + "\n" +
		lipgloss.NewStyle().Bold(true).Render(m.match.InterpretedIntent)
	note := ""
	if m.match.Source == service.MatchSourceFallback && m.match.Err != "" {
		note = "\n" + hint("AI matching unavailable, showing keyword matches.")
	}
	return intent + note + "\n\n" + m.resultList.View()
}

func (m appModel) ticketView() string {
	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("2"))

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Booking Confirmed!"),
		"",
		m.ticket.EventTitle,
		fmt.Sprintf("%s • %s", m.ticket.Date, m.ticket.Time),
		m.ticket.Venue,
		"",
		fmt.Sprintf("Seats: %s", strings.Join(m.ticket.Seats, ", ")),
		fmt.Sprintf("Total: $%s", m.ticket.TotalAmount.StringFixed(2)),
		"",
		hint(fmt.Sprintf("Booking ID: %s", m.ticket.ID)),
	}
	return panel.Render(strings.Join(lines, "\n"))
}

func (m appModel) updateDiscoverInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.queryInput.Blur()
		m.state = stateBrowse
		return m, nil
	case "enter":
		return m.startMatch(m.queryInput.Value())
	case "1", "2", "3", "4":
		if m.queryInput.Value() == "" {
			idx := int(msg.String()[0] - '1')
			return m.startMatch(examplePrompts[idx])
		}
	}
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m appModel) startMatch(query string) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" {
		return m, nil
	}
	m.queryInput.SetValue(query)
	m.queryInput.Blur()
	m.matchSeq++
	m.state = stateMatching
	_ = store.RememberQuery(query)
	m.recent, _ = store.LoadRecentQueries()
	return m, tea.Batch(m.matchCmd(m.matchSeq, query), m.spinner.Tick)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next := m.goBack()
		return next, nil, true
	case "ctrl+f":
		if m.state == stateBrowse || m.state == stateResults {
			return m.openDiscover()
		}
	case "ctrl+b":
		if m.state == stateBrowse {
			return m, fetchBookingsCmd(), true
		}
	case "c":
		if m.state == stateSeatMap {
			return m, m.checkoutCmd(), true
		}
	}

	if m.state == stateSeatMap {
		if handled, next := m.handleSeatKey(msg); handled {
			return next, nil, true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateBrowse:
			item, ok := m.catalogList.SelectedItem().(catalogItem)
			if !ok {
				return m, nil, true
			}
			return m.openShowtimes(item.item), nil, true
		case stateResults:
			item, ok := m.resultList.SelectedItem().(resultItem)
			if !ok {
				return m, nil, true
			}
			return m.openShowtimes(item.rec.Item), nil, true
		case stateShowtimes:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			return m.openSeatMap(item.time)
		case stateTicket:
			m.state = stateBrowse
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) openDiscover() (tea.Model, tea.Cmd, bool) {
	m.state = stateDiscover
	m.match = nil
	m.queryInput.SetValue("")
	m.queryInput.Focus()
	m.recent, _ = store.LoadRecentQueries()
	return m, textinput.Blink, true
}

func (m appModel) openShowtimes(item catalog.Item) appModel {
	m.item = item
	m.showtimeList.Title = fmt.Sprintf("Select Showtime • %s", item.Title())
	m.showtimeList.SetItems(buildShowtimeItems())
	m.showtimeList.Select(0)
	m.state = stateShowtimes
	return m
}

func (m appModel) openSeatMap(showtime string) (tea.Model, tea.Cmd, bool) {
	session, err := booking.NewSession(seatRows, seatCols, nil)
	if err != nil {
		return m, errCmd(err), true
	}
	m.session = session
	m.showtime = showtime
	m.cursorRow = 0
	m.cursorCol = 0
	m.notice = ""
	m.state = stateSeatMap
	return m, nil, true
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (bool, appModel) {
	if m.session == nil {
		return false, m
	}
	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		m.notice = ""
		return true, m
	case "down", "j":
		if m.cursorRow < seatRows-1 {
			m.cursorRow++
		}
		m.notice = ""
		return true, m
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		m.notice = ""
		return true, m
	case "right", "l":
		if m.cursorCol < seatCols-1 {
			m.cursorCol++
		}
		m.notice = ""
		return true, m
	case "enter", " ":
		id := seatIDAt(m.cursorRow, m.cursorCol)
		if err := m.session.Toggle(id); err != nil {
			m.notice = err.Error()
		} else {
			m.notice = ""
		}
		return true, m
	}
	return false, m
}

func (m appModel) goBack() appModel {
	switch m.state {
	case stateDiscover, stateBookings, stateTicket:
		m.state = stateBrowse
	case stateMatching, stateResults:
		m.state = stateDiscover
		m.queryInput.Focus()
	case stateShowtimes:
		if m.match != nil {
			m.state = stateResults
		} else {
			m.state = stateBrowse
		}
	case stateSeatMap:
		m.session = nil
		m.notice = ""
		m.state = stateShowtimes
	case stateError:
		m.state = m.lastState
	}
	return m
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateBrowse:
		return &m.catalogList
	case stateResults:
		return &m.resultList
	case stateShowtimes:
		return &m.showtimeList
	case stateBookings:
		return &m.bookingList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.catalogList.SetSize(m.width, h)
	m.resultList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) matchCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		result := m.matcher.Match(context.Background(), query)
		return matchMsg{seq: seq, result: result}
	}
}

func fetchBookingsCmd() tea.Cmd {
	return func() tea.Msg {
		bookings, err := store.LoadBookings()
		return bookingsMsg{bookings: bookings, err: err}
	}
}

func (m appModel) checkoutCmd() tea.Cmd {
	session := m.session
	ctx := booking.CheckoutContext{
		ItemID: m.item.ID(),
		Title:  m.item.Title(),
		Image:  m.item.Image(),
		Date:   defaultDate,
		Time:   m.showtime,
		Venue:  defaultVenue,
	}
	bookings := m.bookings
	return func() tea.Msg {
		if session == nil {
			return checkoutMsg{err: booking.ErrNoSeatsSelected}
		}
		b, err := session.Checkout(ctx, bookings)
		return checkoutMsg{booking: b, err: err}
	}
}

type catalogItem struct {
	item catalog.Item
}

func (c catalogItem) Title() string {
	return c.item.Title()
}

func (c catalogItem) Description() string {
	if c.item.IsMovie() {
		mv := c.item.Movie
		return fmt.Sprintf("%s • %s • ★ %.1f", strings.Join(mv.Genre, ", "), mv.Duration, mv.Rating)
	}
	ev := c.item.Event
	return fmt.Sprintf("%s • %s • %s • from $%.0f", strings.ToUpper(ev.Type), ev.Venue, ev.Date, ev.PriceMin)
}

func (c catalogItem) FilterValue() string {
	parts := []string{c.item.Title(), c.item.Category(), c.item.Description()}
	if c.item.IsMovie() {
		parts = append(parts, c.item.Movie.Genre...)
	} else {
		parts = append(parts, c.item.Event.Venue)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

type resultItem struct {
	rec service.Recommendation
	top bool
}

func (r resultItem) Title() string {
	if r.top {
		return fmt.Sprintf("%s • Top Match", r.rec.Item.Title())
	}
	return r.rec.Item.Title()
}

func (r resultItem) Description() string {
	return fmt.Sprintf("%.0f%% match • %s", r.rec.MatchScore*100, r.rec.Explanation)
}

func (r resultItem) FilterValue() string {
	return strings.ToLower(r.rec.Item.Title())
}

type showtimeItem struct {
	time string
}

func (s showtimeItem) Title() string {
	return s.time
}

func (s showtimeItem) Description() string {
	return "Standard Hall"
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(s.time)
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	return b.booking.EventTitle
}

func (b bookingItem) Description() string {
	return fmt.Sprintf("%s • %s • %s • $%s",
		b.booking.Date, b.booking.Time,
		strings.Join(b.booking.Seats, ", "),
		b.booking.TotalAmount.StringFixed(2))
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{b.booking.EventTitle}, b.booking.Seats...), " "))
}

func buildCatalogItems(items []catalog.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, item := range items {
		out = append(out, catalogItem{item: item})
	}
	return out
}

func buildResultItems(recs []service.Recommendation) []list.Item {
	out := make([]list.Item, 0, len(recs))
	for i, rec := range recs {
		out = append(out, resultItem{rec: rec, top: i == 0})
	}
	return out
}

func buildShowtimeItems() []list.Item {
	out := make([]list.Item, 0, len(showtimes))
	for _, t := range showtimes {
		out = append(out, showtimeItem{time: t})
	}
	return out
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	// Newest first.
	out := make([]list.Item, 0, len(bookings))
	for i := len(bookings) - 1; i >= 0; i-- {
		out = append(out, bookingItem{booking: bookings[i]})
	}
	return out
}

func seatIDAt(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+row, col+1)
}
