package services

import (
	"testing"
	"time"

	"bustms/internal/domain"
)

func TestReportsServiceRevenue(t *testing.T) {
	fleet := domain.NewFleet()
	if _, err := fleet.BookSeats(1, "1A", 2, false); err != nil {
		t.Fatalf("BookSeats: %v", err)
	}
	if _, err := fleet.BookSeats(6, "9d,8c", 3, true); err != nil {
		t.Fatalf("BookSeats: %v", err)
	}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	report := ReportsService{Fleet: fleet, Now: func() time.Time { return at }}.Revenue()
	if report.Total != 3600 {
		t.Fatalf("total = %d, want 3600", report.Total)
	}
	if report.Total != fleet.TotalRevenue() {
		t.Fatalf("report total disagrees with fleet total")
	}
	if len(report.Buses) != domain.FleetSize || report.Buses[5].Revenue != 2400 {
		t.Fatalf("unexpected breakdown: %+v", report.Buses)
	}
	if !report.GeneratedAt.Equal(at) {
		t.Fatalf("GeneratedAt = %v", report.GeneratedAt)
	}
}
