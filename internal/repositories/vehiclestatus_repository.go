package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

type VehicleStatusRepository struct {
	DB *sql.DB
}

func (r VehicleStatusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VehicleStatusRepository) List() ([]models.VehicleStatus, error) {
	rows, err := r.db().Query(`SELECT category, is_active, deactivate_until, base_price FROM vehicle_status ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VehicleStatus{}
	for rows.Next() {
		var v models.VehicleStatus
		if err := rows.Scan(&v.Category, &v.IsActive, &v.DeactivateUntil, &v.BasePrice); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleStatusRepository) Get(category string) (models.VehicleStatus, error) {
	var v models.VehicleStatus
	err := r.db().QueryRow(`SELECT category, is_active, deactivate_until, base_price
		FROM vehicle_status WHERE category=? LIMIT 1`, strings.TrimSpace(category)).
		Scan(&v.Category, &v.IsActive, &v.DeactivateUntil, &v.BasePrice)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VehicleStatus{}, fmt.Errorf("vehicle status not found")
	}
	return v, err
}

func (r VehicleStatusRepository) Save(v models.VehicleStatus) error {
	if strings.TrimSpace(v.Category) == "" {
		return fmt.Errorf("category is required")
	}
	_, err := r.db().Exec(`
		INSERT INTO vehicle_status (category, is_active, deactivate_until, base_price)
		VALUES (?,?,?,?)
		ON DUPLICATE KEY UPDATE is_active=VALUES(is_active),
			deactivate_until=VALUES(deactivate_until), base_price=VALUES(base_price)`,
		strings.TrimSpace(v.Category), v.IsActive, v.DeactivateUntil, v.BasePrice)
	return err
}
