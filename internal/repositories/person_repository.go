package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

type PersonRepository struct {
	DB *sql.DB
}

func (r PersonRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the agent/trainer pool; activeOnly is used when offering
// people for assignment.
func (r PersonRepository) List(activeOnly bool) ([]models.Person, error) {
	query := `SELECT id, name, contact, district, province, is_active FROM persons`
	if activeOnly {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY name`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Contact, &p.District, &p.Province, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PersonRepository) Create(p models.Person) (int64, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, fmt.Errorf("person name is required")
	}
	res, err := r.db().Exec(`INSERT INTO persons (name, contact, district, province, is_active) VALUES (?,?,?,?,?)`,
		strings.TrimSpace(p.Name), p.Contact, p.District, p.Province, p.IsActive)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PersonRepository) Save(p models.Person) error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid person id")
	}
	_, err := r.db().Exec(`UPDATE persons SET name=?, contact=?, district=?, province=?, is_active=? WHERE id=?`,
		strings.TrimSpace(p.Name), p.Contact, p.District, p.Province, p.IsActive, p.ID)
	return err
}

func (r PersonRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid person id")
	}
	_, err := r.db().Exec(`DELETE FROM persons WHERE id=?`, id)
	return err
}
