package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"bustms/internal/domain"
	"bustms/internal/utils"

	"github.com/gin-gonic/gin"
)

type seatView struct {
	Seat     string `json:"seat"`
	Booked   bool   `json:"booked"`
	BookedAt string `json:"booked_at,omitempty"`
}

type rowView struct {
	Row   int        `json:"row"`
	Seats []seatView `json:"seats"`
}

// Buses lists occupancy per bus.
func (h Handlers) Buses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buses": h.Fleet.Summaries()})
}

// BusSeats returns the seat grid of one bus.
func (h Handlers) BusSeats(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("bus"))
	bus, err := strconv.Atoi(raw)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "bus_number", Value: raw, Msg: "must be a number"})
		return
	}
	m, err := h.Fleet.SeatMap(bus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := make([]rowView, 0, domain.Rows)
	for i := range m {
		rv := rowView{Row: i + 1, Seats: make([]seatView, 0, domain.Columns)}
		for j := range m[i] {
			sv := seatView{
				Seat:   domain.SeatCode{Row: i, Column: j}.String(),
				Booked: m[i][j].Occupied,
			}
			if m[i][j].Occupied {
				sv.BookedAt = utils.FormatDateTime(m[i][j].BookedAt)
			}
			rv.Seats = append(rv.Seats, sv)
		}
		rows = append(rows, rv)
	}

	c.JSON(http.StatusOK, gin.H{
		"bus":    bus,
		"booked": m.Booked(),
		"free":   m.Free(),
		"rows":   rows,
	})
}
