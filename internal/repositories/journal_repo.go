package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	intdb "bustms/internal/db"
)

const journalTable = "booking_journal"

// JournalEntry is one booked seat.
type JournalEntry struct {
	TicketCode  string
	BusNumber   int
	SeatCode    string
	RouteNumber int
	RouteName   string
	IsAC        bool
	Fare        int64
	BookedAt    time.Time
}

// JournalRepo appends booked seats to an audit table. It never reads them back.
type JournalRepo struct {
	DB *sql.DB

	mu    sync.Mutex
	ready bool
}

// ensureTable creates the journal table on first use. A failed attempt is
// retried on the next call.
func (r *JournalRepo) ensureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}
	if r.DB == nil {
		return fmt.Errorf("journal db not configured")
	}
	if !intdb.HasTable(ctx, r.DB, journalTable) {
		ddl := `
CREATE TABLE IF NOT EXISTS booking_journal (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	ticket_code VARCHAR(64) NOT NULL,
	bus_number TINYINT NOT NULL,
	seat_code VARCHAR(4) NOT NULL,
	route_number TINYINT NOT NULL,
	route_name VARCHAR(64) NULL,
	is_ac BOOLEAN NOT NULL DEFAULT FALSE,
	fare BIGINT NOT NULL,
	booked_at DATETIME NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_ticket (ticket_code),
	KEY idx_bus_seat (bus_number, seat_code)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
		if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	r.ready = true
	return nil
}

// Append writes entries in one transaction.
func (r *JournalRepo) Append(ctx context.Context, entries []JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt := `INSERT INTO ` + journalTable + `
		(ticket_code, bus_number, seat_code, route_number, route_name, is_ac, fare, booked_at)
		VALUES (?,?,?,?,?,?,?,?)`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, stmt,
			e.TicketCode,
			e.BusNumber,
			strings.ToUpper(strings.TrimSpace(e.SeatCode)),
			e.RouteNumber,
			intdb.NullIfEmpty(e.RouteName),
			e.IsAC,
			e.Fare,
			e.BookedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
