package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bustms/internal/domain"
	"bustms/internal/repositories"
	"bustms/internal/utils"

	"github.com/google/uuid"
)

// Journal receives every booked seat.
type Journal interface {
	Append(ctx context.Context, entries []repositories.JournalEntry) error
}

// ReceiptWriter stores an e-ticket and returns where it went.
type ReceiptWriter interface {
	WriteTicket(t Ticket) (string, error)
}

type BookingRequest struct {
	BusNumber   int
	SeatList    string
	RouteNumber int
	IsAC        bool
}

// SeatResult extends a seat outcome with what was issued for it.
type SeatResult struct {
	domain.SeatOutcome
	TicketCode  string
	ReceiptPath string
}

type BookingResult struct {
	Request BookingRequest
	Seats   []SeatResult
	// Err is the validation or conflict error that stopped the request, if any.
	Err error
	// Warnings lists side effects that failed without affecting the booking.
	Warnings []string
}

// OK reports whether every requested seat was booked.
func (r BookingResult) OK() bool { return r.Err == nil }

// Booked returns the seats booked by this request.
func (r BookingResult) Booked() []SeatResult {
	out := []SeatResult{}
	for _, s := range r.Seats {
		if s.Booked {
			out = append(out, s)
		}
	}
	return out
}

type BookingService struct {
	Fleet     *domain.Fleet
	Journal   Journal
	Receipts  ReceiptWriter
	RequestID string
}

// NewTicketCode returns a code like TCK-2-3B-1A2B3C4D.
func NewTicketCode(busNumber int, seat string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("TCK-%d-%s-%s", busNumber, seat, id[:8])
}

// Book runs one booking request against the fleet.
func (s BookingService) Book(ctx context.Context, req BookingRequest) BookingResult {
	res := BookingResult{Request: req}
	if !domain.ValidBusNumber(req.BusNumber) {
		res.Err = domain.ValidationError{Field: "bus_number", Value: fmt.Sprint(req.BusNumber), Msg: "invalid bus number"}
		return res
	}
	route, ok := utils.LookupRoute(req.RouteNumber)
	if !ok {
		res.Err = domain.ValidationError{Field: "route_number", Value: fmt.Sprint(req.RouteNumber), Msg: "invalid route number"}
		return res
	}

	outcomes, err := s.Fleet.BookSeats(req.BusNumber, req.SeatList, req.RouteNumber, req.IsAC)
	res.Err = err

	entries := []repositories.JournalEntry{}
	for _, o := range outcomes {
		sr := SeatResult{SeatOutcome: o}
		if o.Booked {
			sr.TicketCode = NewTicketCode(req.BusNumber, o.Seat.String())
			entries = append(entries, repositories.JournalEntry{
				TicketCode:  sr.TicketCode,
				BusNumber:   req.BusNumber,
				SeatCode:    o.Seat.String(),
				RouteNumber: route.Number,
				RouteName:   route.Name,
				IsAC:        req.IsAC,
				Fare:        o.Fare,
				BookedAt:    o.BookedAt,
			})
		}
		res.Seats = append(res.Seats, sr)
	}

	utils.LogEvent(s.RequestID, "booking", "book_seats",
		fmt.Sprintf("bus=%d route=%d ac=%t booked=%d ok=%t", req.BusNumber, req.RouteNumber, req.IsAC, len(entries), err == nil))

	if s.Journal != nil && len(entries) > 0 {
		jctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		jerr := s.Journal.Append(jctx, entries)
		cancel()
		if jerr != nil {
			ierr := domain.InternalError{Msg: "journal append failed", Err: jerr}
			utils.LogEvent(s.RequestID, "journal", "append", ierr.Error())
			res.Warnings = append(res.Warnings, "booking journal unavailable")
		}
	}

	if s.Receipts != nil {
		for i := range res.Seats {
			sr := &res.Seats[i]
			if !sr.Booked {
				continue
			}
			path, werr := s.Receipts.WriteTicket(Ticket{
				TicketCode:  sr.TicketCode,
				BusNumber:   req.BusNumber,
				Seat:        sr.Seat.String(),
				RouteNumber: route.Number,
				RouteName:   route.Name,
				IsAC:        req.IsAC,
				Fare:        sr.Fare,
				BookedAt:    sr.BookedAt,
			})
			if werr != nil {
				utils.LogEvent(s.RequestID, "docs", "write_ticket", fmt.Sprintf("ticket=%s err=%v", sr.TicketCode, werr))
				res.Warnings = append(res.Warnings, fmt.Sprintf("receipt for seat %s not written", sr.Seat))
				continue
			}
			sr.ReceiptPath = path
		}
	}

	return res
}
