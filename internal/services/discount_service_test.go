package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tukrent/internal/domain"
	"tukrent/internal/repositories"
)

var discountCols = []string{
	"code", "name", "start_date", "end_date",
	"max_users", "current_users", "mode", "value", "active",
}

func discountRow(current, max int) *sqlmock.Rows {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(discountCols).
		AddRow("SUMMER10", "Summer promo", start, end, max, current, "percentage", 10.0, true)
}

func newDiscountService(t *testing.T) (DiscountService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := DiscountService{
		DiscountRepo: repositories.DiscountRepository{DB: db},
		DB:           db,
		Now:          func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
	return svc, mock
}

func TestRedeemAppliesPercentage(t *testing.T) {
	svc, mock := newDiscountService(t)

	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(3, 100))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE discounts SET current_users = current_users \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := svc.Redeem("SUMMER10", 295)
	if err != nil {
		t.Fatalf("Redeem error: %v", err)
	}
	if got != 265.5 {
		t.Fatalf("discounted total = %v, want 265.5", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRedeemRejectsExhaustedRule(t *testing.T) {
	svc, mock := newDiscountService(t)

	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(100, 100))

	_, err := svc.Redeem("SUMMER10", 295)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redemption was attempted on an exhausted rule: %v", err)
	}
}

func TestRedeemLosingRaceRollsBack(t *testing.T) {
	svc, mock := newDiscountService(t)

	// the precheck still sees one slot left
	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(99, 100))
	mock.ExpectBegin()
	// the conditional update loses to a concurrent redeemer
	mock.ExpectExec("UPDATE discounts SET current_users = current_users \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Redeem("SUMMER10", 295)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidateUnknownCodeIsNotFound(t *testing.T) {
	svc, mock := newDiscountService(t)

	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows(discountCols))

	_, err := svc.Validate("NOPE")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestValidateOutsideWindow(t *testing.T) {
	svc, mock := newDiscountService(t)
	svc.Now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }

	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(0, 100))

	_, err := svc.Validate("SUMMER10")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
