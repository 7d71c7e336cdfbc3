package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

// ErrAdminNotFound distinguishes a missing account from a query failure.
var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the account and its password hash for login checks.
func (r AdminRepository) GetByEmail(email string) (models.Admin, string, error) {
	var a models.Admin
	var hash string
	err := r.db().QueryRow(`SELECT id, name, email, password_hash, role FROM admins WHERE email=? LIMIT 1`,
		strings.TrimSpace(strings.ToLower(email))).
		Scan(&a.ID, &a.Name, &a.Email, &hash, &a.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, "", ErrAdminNotFound
	}
	return a, hash, err
}

func (r AdminRepository) Create(name, email, passwordHash, role string) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, fmt.Errorf("email is required")
	}
	if role == "" {
		role = "admin"
	}
	res, err := r.db().Exec(`INSERT INTO admins (name, email, password_hash, role) VALUES (?,?,?,?)`,
		name, strings.TrimSpace(strings.ToLower(email)), passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
