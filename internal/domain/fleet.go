package domain

import (
	"sync"
	"time"
)

// FleetSize is the number of buses, addressed 1..FleetSize.
const FleetSize = 6

// BusSummary is a read-only view of one bus.
type BusSummary struct {
	Bus     int   `json:"bus"`
	Booked  int   `json:"booked"`
	Free    int   `json:"free"`
	Revenue int64 `json:"revenue"`
}

// Fleet owns the buses for the lifetime of the process.
// All access goes through the fleet lock so that readers on other goroutines
// never see a booking half applied.
type Fleet struct {
	mu    sync.RWMutex
	buses [FleetSize]*Bus
}

func NewFleet() *Fleet {
	f := &Fleet{}
	for i := range f.buses {
		f.buses[i] = NewBus(i + 1)
	}
	return f
}

// ValidBusNumber reports whether n addresses a bus.
func ValidBusNumber(n int) bool {
	return n >= 1 && n <= FleetSize
}

// SetClock replaces the booking clock of every bus.
func (f *Fleet) SetClock(clock func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.buses {
		b.Clock = clock
	}
}

// Get returns bus busNumber. The returned Bus is not guarded by the fleet
// lock: use the Fleet methods when other goroutines may be reading.
func (f *Fleet) Get(busNumber int) (*Bus, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bus(busNumber)
}

// bus looks up a bus without locking; callers hold f.mu.
func (f *Fleet) bus(busNumber int) (*Bus, error) {
	if !ValidBusNumber(busNumber) {
		return nil, errBusNumber(busNumber)
	}
	return f.buses[busNumber-1], nil
}

// BookSeats books seats on one bus. See Bus.BookSeats.
func (f *Fleet) BookSeats(busNumber int, seatList string, routeNumber int, isAC bool) ([]SeatOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.bus(busNumber)
	if err != nil {
		return nil, err
	}
	return b.BookSeats(seatList, routeNumber, isAC)
}

// SeatMap returns a snapshot of one bus grid.
func (f *Fleet) SeatMap(busNumber int) (SeatMap, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	b, err := f.bus(busNumber)
	if err != nil {
		return SeatMap{}, err
	}
	return b.SeatMap(), nil
}

// TotalRevenue sums CalculateRevenue over every bus.
func (f *Fleet) TotalRevenue() int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var total int64
	for _, b := range f.buses {
		total += b.CalculateRevenue()
	}
	return total
}

// Summaries returns one entry per bus in bus order.
func (f *Fleet) Summaries() []BusSummary {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]BusSummary, 0, FleetSize)
	for _, b := range f.buses {
		m := b.SeatMap()
		out = append(out, BusSummary{
			Bus:     b.Number,
			Booked:  m.Booked(),
			Free:    m.Free(),
			Revenue: b.CalculateRevenue(),
		})
	}
	return out
}
