package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

type LocationRepository struct {
	DB *sql.DB
}

func (r LocationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns locations; activeOnly filters to status='active', which is the
// only view customers and booking-assignment forms ever see.
func (r LocationRepository) List(activeOnly bool) ([]models.Location, error) {
	query := `SELECT id, name, price, status FROM locations`
	if activeOnly {
		query += ` WHERE status='active'`
	}
	query += ` ORDER BY name`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Location{}
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Price, &l.Status); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r LocationRepository) GetByName(name string) (models.Location, error) {
	var l models.Location
	err := r.db().QueryRow(`SELECT id, name, price, status FROM locations WHERE name=? LIMIT 1`,
		strings.TrimSpace(name)).Scan(&l.ID, &l.Name, &l.Price, &l.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, fmt.Errorf("location not found")
	}
	return l, err
}

func (r LocationRepository) Create(l models.Location) (int64, error) {
	if strings.TrimSpace(l.Name) == "" {
		return 0, fmt.Errorf("location name is required")
	}
	if l.Status == "" {
		l.Status = "active"
	}
	res, err := r.db().Exec(`INSERT INTO locations (name, price, status) VALUES (?,?,?)`,
		strings.TrimSpace(l.Name), l.Price, l.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r LocationRepository) Save(l models.Location) error {
	if l.ID <= 0 {
		return fmt.Errorf("invalid location id")
	}
	_, err := r.db().Exec(`UPDATE locations SET name=?, price=?, status=? WHERE id=?`,
		strings.TrimSpace(l.Name), l.Price, l.Status, l.ID)
	return err
}

func (r LocationRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid location id")
	}
	_, err := r.db().Exec(`DELETE FROM locations WHERE id=?`, id)
	return err
}
