package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleEntries() []JournalEntry {
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	return []JournalEntry{
		{TicketCode: "TCK-1-1A-aaaa", BusNumber: 1, SeatCode: "1a", RouteNumber: 1, RouteName: "DHAKA-COX", Fare: 1200, BookedAt: at},
		{TicketCode: "TCK-1-1B-bbbb", BusNumber: 1, SeatCode: "1B", RouteNumber: 1, RouteName: "DHAKA-COX", Fare: 1200, BookedAt: at},
	}
}

func TestJournalAppendCreatesTableOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	entries := sampleEntries()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_journal").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_journal").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_journal").
		WithArgs("TCK-1-1A-aaaa", 1, "1A", 1, "DHAKA-COX", false, int64(1200), entries[0].BookedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_journal").
		WithArgs("TCK-1-1B-bbbb", 1, "1B", 1, "DHAKA-COX", false, int64(1200), entries[1].BookedAt).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	// second append must not look up the table again
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_journal").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	repo := &JournalRepo{DB: db}
	if err := repo.Append(context.Background(), entries); err != nil {
		t.Fatalf("first append error: %v", err)
	}
	if err := repo.Append(context.Background(), entries[:1]); err != nil {
		t.Fatalf("second append error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJournalAppendRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_journal").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("booking_journal"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_journal").
		WillReturnError(errors.New("duplicate ticket"))
	mock.ExpectRollback()

	repo := &JournalRepo{DB: db}
	if err := repo.Append(context.Background(), sampleEntries()); err == nil {
		t.Fatalf("expected error from failed insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJournalAppendEmptyIsNoop(t *testing.T) {
	repo := &JournalRepo{}
	if err := repo.Append(context.Background(), nil); err != nil {
		t.Fatalf("empty append should be a no-op, got %v", err)
	}
}

func TestJournalAppendRetriesTableCreation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_journal").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_journal").
		WillReturnError(errors.New("transient"))

	mock.ExpectQuery("information_schema\\.tables").WithArgs("booking_journal").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS booking_journal").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_journal").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := &JournalRepo{DB: db}
	entries := sampleEntries()[:1]
	if err := repo.Append(context.Background(), entries); err == nil {
		t.Fatalf("first append should fail when table creation fails")
	}
	if err := repo.Append(context.Background(), entries); err != nil {
		t.Fatalf("second append should retry table creation, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
