package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bustms/internal/domain"
)

func sampleTicket() Ticket {
	return Ticket{
		TicketCode:  "TCK-1-1A-0000ABCD",
		BusNumber:   1,
		Seat:        "1A",
		RouteNumber: 1,
		RouteName:   "DHAKA-COX",
		IsAC:        true,
		Fare:        1560,
		BookedAt:    time.Now(),
	}
}

func TestBuildETicketPDF(t *testing.T) {
	pdf, name, err := BuildETicketPDF(sampleTicket())
	if err != nil {
		t.Fatalf("BuildETicketPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if name != "ticket-TCK-1-1A-0000ABCD.pdf" {
		t.Fatalf("unexpected name %q", name)
	}
}

func TestDocsServiceWriteTicket(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tickets")
	path, err := DocsService{Dir: dir}.WriteTicket(sampleTicket())
	if err != nil {
		t.Fatalf("WriteTicket returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("ticket not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("ticket file is empty")
	}
}

func TestDocsServiceWriteTicketWithoutDir(t *testing.T) {
	if _, err := (DocsService{}).WriteTicket(sampleTicket()); err == nil {
		t.Fatalf("expected error without directory")
	}
}

func TestBuildRevenuePDF(t *testing.T) {
	fleet := domain.NewFleet()
	if _, err := fleet.BookSeats(2, "1A,1B", 3, true); err != nil {
		t.Fatalf("BookSeats: %v", err)
	}
	report := ReportsService{Fleet: fleet}.Revenue()

	pdf, name, err := BuildRevenuePDF(report)
	if err != nil {
		t.Fatalf("BuildRevenuePDF returned error: %v", err)
	}
	if len(pdf) == 0 || name == "" {
		t.Fatalf("BuildRevenuePDF returned empty data")
	}
}
