package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Grid dimensions of every bus.
const (
	Rows    = 10
	Columns = 4
)

// Seat is one cell of a bus seat grid. BookedAt is zero while the seat is free.
type Seat struct {
	Occupied bool
	BookedAt time.Time
}

// SeatCode is a zero-based grid address.
type SeatCode struct {
	Row    int
	Column int
}

// String renders the code as a passenger sees it, e.g. "3B".
func (c SeatCode) String() string {
	return fmt.Sprintf("%d%c", c.Row+1, rune('A'+c.Column))
}

func (c SeatCode) inBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Column >= 0 && c.Column < Columns
}

// ParseSeatCode converts a token like "1a" into a grid address.
//
// A token is exactly one digit followed by one letter no later than D. The row digit
// is one-based, so "0A" falls outside the grid and row 10 cannot be addressed.
func ParseSeatCode(token string) (SeatCode, error) {
	r := []rune(strings.ToUpper(token))
	if len(r) != 2 || r[0] < '0' || r[0] > '9' || !unicode.IsLetter(r[1]) || r[1] > 'D' {
		return SeatCode{}, errInvalidSeat(token)
	}
	code := SeatCode{Row: int(r[0]-'0') - 1, Column: int(r[1] - 'A')}
	if !code.inBounds() {
		return SeatCode{}, errInvalidSeat(token)
	}
	return code, nil
}

// SeatMap is a snapshot of a bus grid, indexed [row][column].
type SeatMap [Rows][Columns]Seat

// Booked counts occupied cells.
func (m SeatMap) Booked() int {
	n := 0
	for i := range m {
		for j := range m[i] {
			if m[i][j].Occupied {
				n++
			}
		}
	}
	return n
}

// Free counts unoccupied cells.
func (m SeatMap) Free() int {
	return Rows*Columns - m.Booked()
}
