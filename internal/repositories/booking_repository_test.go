package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tukrent/internal/domain/models"
)

func newBookingRepo(t *testing.T) (BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return BookingRepository{DB: db}, mock
}

func TestUpdateTouchesOnlyPresentFields(t *testing.T) {
	repo, mock := newBookingRepo(t)

	status := "assigned"
	mock.ExpectExec(`UPDATE bookings SET status=\? WHERE id=\?`).
		WithArgs("assigned", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(5, models.BookingUpdate{Status: &status}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected columns touched: %v", err)
	}
}

func TestUpdateWithNoFieldsIsNoop(t *testing.T) {
	repo, mock := newBookingRepo(t)

	if err := repo.Update(5, models.BookingUpdate{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("empty patch still hit the database: %v", err)
	}
}

func TestCreateSerializesJSONColumns(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			"TR-ABCD1234", "Asha", "asha@example.com", "+94770000000",
			"Colombo Fort", "2026-03-10", "09:00",
			"Galle", "2026-03-14", "17:00",
			1, 1, `{"Cooler Box":2}`, nil,
			5.0, 5.0, "", "295.00",
			true, "", "", "",
		).
		WillReturnResult(sqlmock.NewResult(42, 1))

	b := models.Booking{
		BookingRef:     "TR-ABCD1234",
		Name:           "Asha",
		Email:          "asha@example.com",
		WhatsApp:       "+94770000000",
		PickupLocation: "Colombo Fort",
		PickupDate:     "2026-03-10",
		PickupTime:     "09:00",
		ReturnLocation: "Galle",
		ReturnDate:     "2026-03-14",
		ReturnTime:     "17:00",
		TukCount:       1,
		LicenseCount:   1,
		Extras:         map[string]int{"Cooler Box": 2},
		PickupPrice:    5,
		ReturnPrice:    5,
		RentalPrice:    "295.00",
		IsBooked:       true,
	}
	id, err := repo.Create(b)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT(.+)FROM bookings").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(99); err == nil {
		t.Fatal("expected error for missing booking")
	}
}

func TestListNewFiltersEmptyStatus(t *testing.T) {
	repo, mock := newBookingRepo(t)

	cols := []string{
		"id", "booking_ref", "name", "email", "whatsapp",
		"pickup_location", "pickup_date", "pickup_time",
		"return_location", "return_date", "return_time",
		"tuk_count", "license_count", "extras", "train_transfer",
		"pickup_price", "return_price", "coupon_code", "rental_price",
		"is_booked", "status", "assigned_tuks",
		"assigned_person", "holdback_person", "train_transfer_person",
		"license_number", "passport_number", "payment_link", "created_at",
	}
	rows := sqlmock.NewRows(cols).AddRow(
		1, "TR-AAAA0001", "Asha", "asha@example.com", "",
		"Colombo Fort", "2026-03-10", "09:00",
		"Galle", "2026-03-14", "17:00",
		1, 0, `{"Cooler Box":1}`, "",
		0.0, 0.0, "", "115.00",
		true, "", `["TK-01"]`,
		"", "", "",
		"", "", "", time.Now(),
	)
	mock.ExpectQuery(`SELECT(.+)FROM bookings WHERE status=''`).
		WillReturnRows(rows)

	list, err := repo.List("new")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d bookings, want 1", len(list))
	}
	if list[0].Extras["Cooler Box"] != 1 {
		t.Fatalf("extras not decoded: %+v", list[0].Extras)
	}
	if len(list[0].AssignedTuks) != 1 || list[0].AssignedTuks[0] != "TK-01" {
		t.Fatalf("assigned tuks not decoded: %+v", list[0].AssignedTuks)
	}
}
