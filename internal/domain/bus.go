package domain

import (
	"time"

	"bustms/internal/utils"
)

// SeatOutcome is the result of one token of a booking request.
// Err is nil only for a seat that was booked by this call.
type SeatOutcome struct {
	Token    string
	Seat     SeatCode
	Booked   bool
	Fare     int64
	BookedAt time.Time
	Err      error
}

// Bus owns the seat grid of one vehicle.
type Bus struct {
	Number int
	// Clock stamps bookings; time.Now when nil.
	Clock func() time.Time

	seats SeatMap
}

func NewBus(number int) *Bus {
	return &Bus{Number: number}
}

func (b *Bus) now() time.Time {
	if b.Clock != nil {
		return b.Clock()
	}
	return time.Now()
}

// SeatMap returns a copy of the grid.
func (b *Bus) SeatMap() SeatMap {
	return b.seats
}

// Seat returns a single cell. ok is false when code lies outside the grid.
func (b *Bus) Seat(code SeatCode) (seat Seat, ok bool) {
	if !code.inBounds() {
		return Seat{}, false
	}
	return b.seats[code.Row][code.Column], true
}

// CalculateSeatFare returns the fare of one seat on routeNumber.
func (b *Bus) CalculateSeatFare(routeNumber int, isAC bool) int64 {
	return utils.ComputeFare(routeNumber, isAC)
}

// CalculateRevenue values every occupied seat at the route 1 base fare,
// whatever route or AC flag it was booked with.
func (b *Bus) CalculateRevenue() int64 {
	return int64(b.seats.Booked()) * utils.BaseFare(1)
}

// BookSeats books a comma separated seat list such as "1a,2b".
//
// Tokens are processed in order. The first invalid or already booked token stops the
// call and its error is returned; seats booked before it stay booked. The returned
// outcomes hold every processed token, the failing one last.
func (b *Bus) BookSeats(seatList string, routeNumber int, isAC bool) ([]SeatOutcome, error) {
	tokens := utils.SplitSeatList(seatList)
	out := make([]SeatOutcome, 0, len(tokens))
	for _, tok := range tokens {
		code, err := ParseSeatCode(tok)
		if err != nil {
			out = append(out, SeatOutcome{Token: tok, Err: err})
			return out, err
		}

		res := SeatOutcome{Token: tok, Seat: code, Fare: b.CalculateSeatFare(routeNumber, isAC)}
		cell := &b.seats[code.Row][code.Column]
		if cell.Occupied {
			res.Err = errSeatBooked(tok)
			out = append(out, res)
			return out, res.Err
		}

		cell.Occupied = true
		cell.BookedAt = b.now()
		res.Booked = true
		res.BookedAt = cell.BookedAt
		out = append(out, res)
	}
	return out, nil
}
