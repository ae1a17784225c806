package services

import (
	"time"

	"bustms/internal/domain"
)

type RevenueReport struct {
	Total       int64               `json:"total"`
	Buses       []domain.BusSummary `json:"buses"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type ReportsService struct {
	Fleet *domain.Fleet
	Now   func() time.Time
}

// Revenue returns the fleet total with a per-bus breakdown.
func (s ReportsService) Revenue() RevenueReport {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	buses := s.Fleet.Summaries()
	var total int64
	for _, b := range buses {
		total += b.Revenue
	}
	return RevenueReport{Total: total, Buses: buses, GeneratedAt: now()}
}
