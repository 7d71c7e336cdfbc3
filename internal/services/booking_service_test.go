package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tukrent/internal/domain"
	"tukrent/internal/domain/models"
	"tukrent/internal/notify"
	"tukrent/internal/repositories"
)

// recordingNotifier captures outbound calls so tests can assert ordering.
type recordingNotifier struct {
	assignments []notify.AssignmentPayload
	completions []models.Booking
	whatsapps   []string
	fail        bool
}

func (n *recordingNotifier) SendAssignment(p notify.AssignmentPayload) error {
	n.assignments = append(n.assignments, p)
	if n.fail {
		return fmt.Errorf("endpoint down")
	}
	return nil
}

func (n *recordingNotifier) SendCompletion(b models.Booking) error {
	n.completions = append(n.completions, b)
	return nil
}

func (n *recordingNotifier) SendWhatsApp(number, message string) error {
	n.whatsapps = append(n.whatsapps, number+": "+message)
	return nil
}

var bookingCols = []string{
	"id", "booking_ref", "name", "email", "whatsapp",
	"pickup_location", "pickup_date", "pickup_time",
	"return_location", "return_date", "return_time",
	"tuk_count", "license_count", "extras", "train_transfer",
	"pickup_price", "return_price", "coupon_code", "rental_price",
	"is_booked", "status", "assigned_tuks",
	"assigned_person", "holdback_person", "train_transfer_person",
	"license_number", "passport_number", "payment_link", "created_at",
}

func bookingRow(id int64, status, coupon string, tukCount int) *sqlmock.Rows {
	return sqlmock.NewRows(bookingCols).AddRow(
		id, "TR-TEST01", "Asha", "asha@example.com", "+94770000000",
		"Colombo Fort", "2026-03-10", "09:00",
		"Galle", "2026-03-14", "17:00",
		tukCount, 1, `{"Cooler Box":2}`, "",
		5.0, 5.0, coupon, "295.00",
		true, status, "",
		"", "", "",
		"", "", "", time.Now(),
	)
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, *recordingNotifier) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	n := &recordingNotifier{}
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		Pricing:     PricingService{MasterPriceRepo: repositories.MasterPriceRepository{DB: db}, DB: db},
		Discounts:   DiscountService{DiscountRepo: repositories.DiscountRepository{DB: db}, DB: db},
		Notifier:    n,
		DB:          db,
	}
	return svc, mock, n
}

func TestCreateWithCouponCommitsRedemptionAndRowTogether(t *testing.T) {
	svc, mock, _ := newBookingService(t)
	svc.Discounts.Now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	mock.ExpectQuery("SELECT(.+)FROM master_prices").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(3, 100))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE discounts SET current_users = current_users \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	b, err := svc.Create(context.Background(), models.Booking{
		Name:       "Asha",
		Email:      "asha@example.com",
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-14",
		TukCount:   1,
		CouponCode: "SUMMER10",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	// 5 ladder days at 16, minus the 10% coupon
	if b.RentalPrice != "72.00" {
		t.Fatalf("rental price = %q, want 72.00", b.RentalPrice)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateInsertFailureRollsBackRedemption(t *testing.T) {
	svc, mock, _ := newBookingService(t)
	svc.Discounts.Now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	mock.ExpectQuery("SELECT(.+)FROM master_prices").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))
	mock.ExpectQuery("SELECT(.+)FROM discounts").WithArgs("SUMMER10").
		WillReturnRows(discountRow(3, 100))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE discounts SET current_users = current_users \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(fmt.Errorf("duplicate booking_ref"))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), models.Booking{
		Name:       "Asha",
		Email:      "asha@example.com",
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-14",
		TukCount:   1,
		CouponCode: "SUMMER10",
	})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redemption escaped the transaction: %v", err)
	}
}

func TestAssignSuccessNotifiesAfterWrite(t *testing.T) {
	svc, mock, n := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "", "", 2))
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := AssignRequest{
		AssignedTuks:   []string{"TK-01", "TK-05"},
		AssignedPerson: "Nuwan",
	}
	b, err := svc.Assign(context.Background(), 7, req)
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	if b.Status != "assigned" {
		t.Fatalf("status = %q, want assigned", b.Status)
	}
	if len(n.assignments) != 1 || n.assignments[0].BookingRef != "TR-TEST01" {
		t.Fatalf("assignment notification missing or wrong: %+v", n.assignments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignWriteFailureSkipsNotification(t *testing.T) {
	svc, mock, n := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "", "", 1))
	mock.ExpectExec("UPDATE bookings").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := svc.Assign(context.Background(), 7, AssignRequest{
		AssignedTuks:   []string{"TK-01"},
		AssignedPerson: "Nuwan",
	})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(n.assignments) != 0 {
		t.Fatalf("notification fired before a confirmed write")
	}
}

func TestAssignGuardRejectsShortTukList(t *testing.T) {
	svc, mock, _ := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "", "", 2))

	_, err := svc.Assign(context.Background(), 7, AssignRequest{
		AssignedTuks:   []string{"TK-01"},
		AssignedPerson: "Nuwan",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssignRejectsWrongStatus(t *testing.T) {
	svc, mock, _ := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "finished", "", 1))

	_, err := svc.Assign(context.Background(), 7, AssignRequest{
		AssignedTuks:   []string{"TK-01"},
		AssignedPerson: "Nuwan",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAssignCouponGateBlocksRecalculation(t *testing.T) {
	svc, mock, n := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(7)).
		WillReturnRows(bookingRow(7, "", "SUMMER10", 1))

	_, err := svc.Assign(context.Background(), 7, AssignRequest{
		AssignedTuks:   []string{"TK-01"},
		AssignedPerson: "Nuwan",
		Recalculate:    true,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(n.assignments) != 0 {
		t.Fatalf("coupon-gated assign still notified")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected writes happened: %v", err)
	}
}

func TestMarkFinishedNotifiesCompletion(t *testing.T) {
	svc, mock, n := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(3)).
		WillReturnRows(bookingRow(3, "onboard", "", 1))
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.MarkFinished(3)
	if err != nil {
		t.Fatalf("MarkFinished error: %v", err)
	}
	if b.Status != "finished" {
		t.Fatalf("status = %q, want finished", b.Status)
	}
	if len(n.completions) != 1 {
		t.Fatalf("completion notification missing")
	}
}

func TestMarkOnboardRequiresAssigned(t *testing.T) {
	svc, mock, _ := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(3)).
		WillReturnRows(bookingRow(3, "", "", 1))

	if _, err := svc.MarkOnboard(3); !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAttachPaymentLinkSendsWhatsApp(t *testing.T) {
	svc, mock, n := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(9)).
		WillReturnRows(bookingRow(9, "", "", 1))
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.AttachPaymentLink(context.Background(), 9, "https://pay.example/abc", false)
	if err != nil {
		t.Fatalf("AttachPaymentLink error: %v", err)
	}
	if b.Status != "PENDING_PAYMENT" {
		t.Fatalf("status = %q, want PENDING_PAYMENT", b.Status)
	}
	if len(n.whatsapps) != 1 {
		t.Fatalf("whatsapp message missing")
	}
}

func TestMarkPaidOnlyFromPendingPayment(t *testing.T) {
	svc, mock, _ := newBookingService(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(9)).
		WillReturnRows(bookingRow(9, "PENDING_PAYMENT", "", 1))
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.MarkPaid(9)
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if b.Status != "PAID" {
		t.Fatalf("status = %q, want PAID", b.Status)
	}

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(9)).
		WillReturnRows(bookingRow(9, "assigned", "", 1))
	if _, err := svc.MarkPaid(9); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for assigned -> PAID, got %v", err)
	}
}
