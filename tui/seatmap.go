package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticketwise-cli/model"
)

func (m appModel) renderSeatMap() string {
	if m.session == nil {
		return "No seat map data."
	}

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleVIP := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	seatStyleOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatStyleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	cellWidth := 2
	gridWidth := seatCols*(cellWidth+1) - 1
	screenBar := screenBarBlock(gridWidth, "SCREEN")

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(hint(screenBar.top))
	b.WriteString("\n  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(screenBar.mid))
	b.WriteString("\n  ")
	b.WriteString(hint(screenBar.bot))
	b.WriteString("\n\n")

	available := 0
	occupied := 0
	selected := 0
	for r := 0; r < seatRows; r++ {
		label := string(rune('A' + r))
		b.WriteString(label + " ")
		for c := 0; c < seatCols; c++ {
			seat, ok := m.session.Seat(seatIDAt(r, c))
			if !ok {
				continue
			}

			var rendered string
			switch seat.Status {
			case model.SeatOccupied:
				occupied++
				rendered = seatStyleOccupied.Render("XX")
			case model.SeatSelected:
				selected++
				rendered = seatStyleSelected.Render("##")
			default:
				available++
				if seat.Class == model.SeatVIP {
					rendered = seatStyleVIP.Render("[]")
				} else {
					rendered = seatStyleAvailable.Render("[]")
				}
			}
			if r == m.cursorRow && c == m.cursorCol {
				rendered = cursorStyle.Render("[]")
				if seat.Status == model.SeatOccupied {
					rendered = cursorStyle.Render("XX")
				} else if seat.Status == model.SeatSelected {
					rendered = cursorStyle.Render("##")
				}
			}
			b.WriteString(rendered)
			if c < seatCols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(" " + label + "\n")
	}

	legend := "Legend: [] available • yellow [] vip • ## selected • XX occupied"
	counts := fmt.Sprintf("Available: %d • Selected: %d • Occupied: %d", available, selected, occupied)

	summary := m.selectionSummary()
	out := b.String() + "\n" + hint(legend) + "\n" + hint(counts) + "\n\n" + summary
	if m.notice != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.notice)
	}
	return out
}

func (m appModel) selectionSummary() string {
	seats := m.session.Selected()
	if len(seats) == 0 {
		return hint("Select seats to proceed")
	}

	var lines []string
	for _, seat := range seats {
		class := "Std"
		if seat.Class == model.SeatVIP {
			class = "VIP"
		}
		lines = append(lines, fmt.Sprintf("Row %s, Seat %d (%s)  $%s", seat.Row, seat.Number, class, seat.Price.StringFixed(2)))
	}
	subtotal, fee, total := m.session.Totals()
	lines = append(lines,
		"",
		fmt.Sprintf("Subtotal     $%s", subtotal.StringFixed(2)),
		fmt.Sprintf("Booking Fee  $%s", fee.StringFixed(2)),
		fmt.Sprintf("Total        $%s", total.StringFixed(2)),
	)
	return strings.Join(lines, "\n")
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
