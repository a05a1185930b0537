package kv

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLiteStoreGetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &SQLiteStore{DB: db}

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"email":"a@x.com"}`)
	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("cv_analyzer_user_a@x.com").
		WillReturnRows(rows)

	value, ok, err := store.Get(context.Background(), "cv_analyzer_user_a@x.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != `{"email":"a@x.com"}` {
		t.Fatalf("Get = (%q, %v)", value, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestSQLiteStoreGetMissReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &SQLiteStore{DB: db}

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestSQLiteStoreSetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &SQLiteStore{DB: db}

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("theme", "dark").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Set(context.Background(), "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := &SQLiteStore{DB: db}

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("cv_analyzer_active_user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Delete(context.Background(), "cv_analyzer_active_user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
