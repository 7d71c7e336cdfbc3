package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"tukrent/internal/domain/models"
)

func newVehicleRepo(t *testing.T) (VehicleRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return VehicleRepository{DB: db}, mock
}

func TestCreateStoresNullForEmptyExpiryDates(t *testing.T) {
	repo, mock := newVehicleRepo(t)

	mock.ExpectExec("INSERT INTO tuktuks").
		WithArgs("Perera", "TK-01", `["Nuwan"]`, "Galle", "Southern",
			2021, nil, nil, true).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create(models.TukTuk{
		Owner:           "Perera",
		VehicleNumber:   "TK-01",
		AssignedUsers:   []string{"Nuwan"},
		District:        "Galle",
		Province:        "Southern",
		ManufactureYear: 2021,
		Active:          true,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 3 {
		t.Fatalf("id = %d, want 3", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveKeepsProvidedExpiryDates(t *testing.T) {
	repo, mock := newVehicleRepo(t)

	mock.ExpectExec("UPDATE tuktuks").
		WithArgs("Perera", "TK-01", `null`, "", "",
			0, "2027-01-31", nil, true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(models.TukTuk{
		ID:              3,
		Owner:           "Perera",
		VehicleNumber:   "TK-01",
		InsuranceExpiry: "2027-01-31",
		Active:          true,
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
