package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	intdb "tukrent/internal/db"
	"tukrent/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `id, owner, vehicle_number, COALESCE(assigned_users, ''),
	district, province, manufacture_year,
	COALESCE(insurance_expiry, ''), COALESCE(license_expiry, ''), active`

func scanVehicle(scan func(dest ...any) error) (models.TukTuk, error) {
	var v models.TukTuk
	var usersRaw string
	err := scan(
		&v.ID, &v.Owner, &v.VehicleNumber, &usersRaw,
		&v.District, &v.Province, &v.ManufactureYear,
		&v.InsuranceExpiry, &v.LicenseExpiry, &v.Active,
	)
	if err != nil {
		return models.TukTuk{}, err
	}
	if usersRaw != "" {
		_ = json.Unmarshal([]byte(usersRaw), &v.AssignedUsers)
	}
	v.InsuranceExpiry = dateOnly(v.InsuranceExpiry)
	v.LicenseExpiry = dateOnly(v.LicenseExpiry)
	return v, nil
}

func (r VehicleRepository) List(activeOnly bool) ([]models.TukTuk, error) {
	query := `SELECT ` + vehicleColumns + ` FROM tuktuks`
	if activeOnly {
		query += ` WHERE active=1`
	}
	query += ` ORDER BY vehicle_number`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TukTuk{}
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.TukTuk, error) {
	row := r.db().QueryRow(`SELECT `+vehicleColumns+` FROM tuktuks WHERE id=? LIMIT 1`, id)
	v, err := scanVehicle(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TukTuk{}, fmt.Errorf("tuktuk not found")
	}
	return v, err
}

func (r VehicleRepository) Create(v models.TukTuk) (int64, error) {
	if strings.TrimSpace(v.VehicleNumber) == "" {
		return 0, fmt.Errorf("vehicle number is required")
	}
	usersJSON, _ := json.Marshal(v.AssignedUsers)
	res, err := r.db().Exec(`
		INSERT INTO tuktuks (owner, vehicle_number, assigned_users, district, province,
			manufacture_year, insurance_expiry, license_expiry, active)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		v.Owner, strings.TrimSpace(v.VehicleNumber), string(usersJSON), v.District, v.Province,
		v.ManufactureYear, intdb.NullIfEmpty(strings.TrimSpace(v.InsuranceExpiry)),
		intdb.NullIfEmpty(strings.TrimSpace(v.LicenseExpiry)), v.Active,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Save(v models.TukTuk) error {
	if v.ID <= 0 {
		return fmt.Errorf("invalid tuktuk id")
	}
	usersJSON, _ := json.Marshal(v.AssignedUsers)
	_, err := r.db().Exec(`
		UPDATE tuktuks SET owner=?, vehicle_number=?, assigned_users=?, district=?, province=?,
			manufacture_year=?, insurance_expiry=?, license_expiry=?, active=?
		WHERE id=?`,
		v.Owner, strings.TrimSpace(v.VehicleNumber), string(usersJSON), v.District, v.Province,
		v.ManufactureYear, intdb.NullIfEmpty(strings.TrimSpace(v.InsuranceExpiry)),
		intdb.NullIfEmpty(strings.TrimSpace(v.LicenseExpiry)), v.Active,
		v.ID,
	)
	return err
}

// Delete removes the vehicle outright; the fleet has no soft-delete.
func (r VehicleRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid tuktuk id")
	}
	_, err := r.db().Exec(`DELETE FROM tuktuks WHERE id=?`, id)
	return err
}
