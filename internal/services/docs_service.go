package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bustms/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Ticket is the printable form of one booked seat.
type Ticket struct {
	TicketCode  string
	BusNumber   int
	Seat        string
	RouteNumber int
	RouteName   string
	IsAC        bool
	Fare        int64
	BookedAt    time.Time
}

// DocsService renders e-tickets and revenue reports as PDF.
// WriteTicket stores tickets under Dir.
type DocsService struct {
	Dir string
}

// WriteTicket renders t and writes it to Dir.
func (s DocsService) WriteTicket(t Ticket) (string, error) {
	if s.Dir == "" {
		return "", fmt.Errorf("receipt directory not configured")
	}
	pdf, name, err := BuildETicketPDF(t)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func BuildETicketPDF(t Ticket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	coach := "Non-AC"
	if t.IsAC {
		coach = "AC"
	}
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket    : %s", safe(t.TicketCode, "-")),
		fmt.Sprintf("Bus       : %d", t.BusNumber),
		fmt.Sprintf("Seat      : %s", safe(t.Seat, "-")),
		fmt.Sprintf("Route     : %d. %s", t.RouteNumber, safe(t.RouteName, "-")),
		fmt.Sprintf("Coach     : %s", coach),
		fmt.Sprintf("Fare      : %s", utils.FormatTakaGrouped(t.Fare)),
		fmt.Sprintf("Booked at : %s", utils.FormatDateTime(t.BookedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Valid for one passenger and one seat. Show this ticket when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("ticket-%s.pdf", utils.SafeFilenamePart(safe(t.TicketCode, "unknown")))
	return buf.Bytes(), name, nil
}

// BuildRevenuePDF renders a fleet revenue report.
func BuildRevenuePDF(r RevenueReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue Report", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "FLEET REVENUE REPORT")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(r.GeneratedAt))
	pdf.Ln(10)

	widths := []float64{25, 35, 35, 60}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"Bus", "Booked", "Free", "Revenue"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, b := range r.Buses {
		pdf.CellFormat(widths[0], 7, fmt.Sprint(b.Bus), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprint(b.Booked), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprint(b.Free), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, utils.FormatTakaGrouped(b.Revenue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 8, utils.FormatTakaGrouped(r.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Every booked seat is valued at the %s base fare.", utils.RouteName(1)), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("revenue-%s.pdf", r.GeneratedAt.Format("20060102-150405"))
	return buf.Bytes(), name, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

var _ ReceiptWriter = DocsService{}
