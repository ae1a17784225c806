package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bustms/internal/domain"
	"bustms/internal/services"
	"bustms/internal/utils"
)

const clearSequence = "\033[H\033[2J"

// Menu is the interactive console front end of the fleet.
type Menu struct {
	Fleet   *domain.Fleet
	Booking services.BookingService
	In      io.Reader
	Out     io.Writer
	// ClearScreen clears the terminal before result screens.
	ClearScreen bool

	lines *bufio.Reader
}

// Run loops until the user picks exit or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.lines = bufio.NewReader(m.In)
	for {
		if ctx.Err() != nil {
			return nil
		}
		m.printMainMenu()

		line, err := m.readLine()
		if err != nil {
			return ignoreEOF(err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.Out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			err = m.displaySeats()
		case 2:
			err = m.bookSeats(ctx)
		case 3:
			m.showRevenue()
		case 4:
			fmt.Fprintln(m.Out, "Exiting the Bus Transportation Management System. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return ignoreEOF(err)
		}

		fmt.Fprintln(m.Out, "\nPress Enter to continue...")
		if _, err := m.readLine(); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.Out, "\n======= Bus Transportation Management System =======")
	fmt.Fprintln(m.Out)
	fmt.Fprintln(m.Out, "1. Display Available Seats")
	fmt.Fprintln(m.Out, "2. Book Seat(s)")
	fmt.Fprintln(m.Out, "3. Calculate Revenue")
	fmt.Fprintln(m.Out, "4. Exit")
	fmt.Fprint(m.Out, "\n\nEnter your choice: ")
}

func (m *Menu) displaySeats() error {
	bus, ok, err := m.readBusNumber()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.Out, "Invalid bus number. Please try again.")
		return nil
	}
	seats, err := m.Fleet.SeatMap(bus)
	if err != nil {
		fmt.Fprintln(m.Out, "Invalid bus number. Please try again.")
		return nil
	}
	m.clear()
	fmt.Fprintf(m.Out, "======= Bus %d - Available Seats =======\n", bus)
	DisplaySeats(m.Out, seats)
	return nil
}

func (m *Menu) bookSeats(ctx context.Context) error {
	bus, ok, err := m.readBusNumber()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.Out, "Invalid bus number. Please try again.")
		return nil
	}

	fmt.Fprint(m.Out, "Enter seat(s) (e.g., 1a,2b,3c): ")
	seatList, err := m.readLine()
	if err != nil {
		return err
	}

	fmt.Fprintln(m.Out, "Available Routes:")
	for _, r := range utils.Routes() {
		fmt.Fprintf(m.Out, "%d. %s\n", r.Number, r.Name)
	}
	fmt.Fprint(m.Out, "Enter Route Number: ")
	line, err := m.readLine()
	if err != nil {
		return err
	}
	route, convErr := strconv.Atoi(strings.TrimSpace(line))
	if _, known := utils.LookupRoute(route); convErr != nil || !known {
		fmt.Fprintln(m.Out, "Invalid route number. Please try again.")
		return nil
	}

	fmt.Fprint(m.Out, "Is it an AC bus? (yes/no): ")
	answer, err := m.readLine()
	if err != nil {
		return err
	}

	res := m.Booking.Book(ctx, services.BookingRequest{
		BusNumber:   bus,
		SeatList:    seatList,
		RouteNumber: route,
		IsAC:        utils.IsYes(answer),
	})

	m.clear()
	fmt.Fprintf(m.Out, "======= Bus %d - Booking Confirmation =======\n", bus)
	RenderBooking(m.Out, res)
	return nil
}

func (m *Menu) showRevenue() {
	total := m.Fleet.TotalRevenue()
	m.clear()
	fmt.Fprintf(m.Out, "======= Total Revenue =======\nTotal Revenue: %s\n", utils.FormatTaka(total))
}

// readBusNumber prompts for a bus; ok is false for non-numeric or out-of-range input.
func (m *Menu) readBusNumber() (int, bool, error) {
	fmt.Fprintf(m.Out, "Enter Bus Number (1 to %d): ", domain.FleetSize)
	line, err := m.readLine()
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || !domain.ValidBusNumber(n) {
		return 0, false, nil
	}
	return n, true, nil
}

// readLine returns the next input line without its line ending. Lines have no
// length limit; an over-long seat list is reported as an invalid seat.
func (m *Menu) readLine() (string, error) {
	line, err := m.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) clear() {
	if m.ClearScreen {
		fmt.Fprint(m.Out, clearSequence)
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
