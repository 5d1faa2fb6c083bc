package bookings

import (
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(outcome application.Outcome, s styles) string {
	switch outcome.State {
	case application.StateLoading:
		return s.loading.Render("Loading bookings...")
	case application.StateEmpty:
		return s.empty.Render("No bookings yet.")
	case application.StateError:
		return s.warning.Render("Error loading bookings: " + outcome.Message)
	case application.StatePopulated:
		return renderList(outcome.Records, s)
	default:
		return s.warning.Render(fmt.Sprintf("unknown outcome state %q", outcome.State))
	}
}

func renderList(records []domain.BookingRecord, s styles) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, s.header.Render(fmt.Sprintf("bookings: %d", len(records))))

	for _, record := range records {
		lines = append(lines, renderItem(record, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderItem(record domain.BookingRecord, s styles) string {
	route := s.route.Render(fmt.Sprintf("From %s to %s", record.Source, record.Destination))
	detail := s.item.Render(fmt.Sprintf(" - Distance: %.2f km - Fare: $%.2f", record.DistanceKm, record.Fare))

	return lipgloss.JoinHorizontal(lipgloss.Top, route, detail)
}
