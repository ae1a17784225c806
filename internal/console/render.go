package console

import (
	"fmt"
	"io"

	"bustms/internal/domain"
	"bustms/internal/services"
	"bustms/internal/utils"
)

// DisplaySeats prints a bus grid: O for a free seat, X for a booked one.
func DisplaySeats(w io.Writer, m domain.SeatMap) {
	fmt.Fprintln(w, "\nAvailable Seats: ")
	fmt.Fprint(w, "   ")
	for j := 0; j < domain.Columns; j++ {
		fmt.Fprintf(w, "%c ", rune('A'+j))
	}
	fmt.Fprintln(w)

	for i := range m {
		fmt.Fprintf(w, "%02d ", i+1)
		for j := range m[i] {
			if m[i][j].Occupied {
				fmt.Fprint(w, "X ")
			} else {
				fmt.Fprint(w, "O ")
			}
		}
		fmt.Fprintln(w)
	}
}

// RenderBooking prints one line block per processed seat.
func RenderBooking(w io.Writer, res services.BookingResult) {
	for _, s := range res.Seats {
		switch {
		case s.Booked:
			fmt.Fprintf(w, "Seat %s booked successfully at %s.\n", s.Token, utils.FormatDateTime(s.BookedAt))
			fmt.Fprintf(w, "Total Fare: %s\n", utils.FormatTaka(s.Fare))
			fmt.Fprintf(w, "Ticket: %s\n", s.TicketCode)
			if s.ReceiptPath != "" {
				fmt.Fprintf(w, "Receipt: %s\n", s.ReceiptPath)
			}
		case domain.IsConflict(s.Err):
			fmt.Fprintf(w, "Seat %s is already booked. Please try again.\n", s.Token)
		default:
			fmt.Fprintf(w, "Invalid seat selection: %s. Please try again.\n", s.Token)
		}
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
}
