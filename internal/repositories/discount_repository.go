package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	core "tukrent/domain"
	intconfig "tukrent/internal/config"
)

type DiscountRepository struct {
	DB *sql.DB
}

func (r DiscountRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const discountColumns = `code, name, start_date, end_date, max_users, current_users, mode, value, active`

func (r DiscountRepository) List() ([]core.DiscountRule, error) {
	rows, err := r.db().Query(`SELECT ` + discountColumns + ` FROM discounts ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []core.DiscountRule{}
	for rows.Next() {
		var d core.DiscountRule
		var mode string
		if err := rows.Scan(&d.Code, &d.Name, &d.StartDate, &d.EndDate,
			&d.MaxUsers, &d.CurrentUsers, &mode, &d.Value, &d.Active); err != nil {
			return nil, err
		}
		d.Mode = core.DiscountMode(mode)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DiscountRepository) GetByCode(code string) (core.DiscountRule, error) {
	var d core.DiscountRule
	var mode string
	err := r.db().QueryRow(`SELECT `+discountColumns+` FROM discounts WHERE code=? LIMIT 1`,
		strings.TrimSpace(code)).
		Scan(&d.Code, &d.Name, &d.StartDate, &d.EndDate,
			&d.MaxUsers, &d.CurrentUsers, &mode, &d.Value, &d.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return core.DiscountRule{}, fmt.Errorf("discount not found")
	}
	d.Mode = core.DiscountMode(mode)
	return d, err
}

func (r DiscountRepository) Create(d core.DiscountRule) error {
	if strings.TrimSpace(d.Code) == "" {
		return fmt.Errorf("discount code is required")
	}
	_, err := r.db().Exec(`INSERT INTO discounts (code, name, start_date, end_date, max_users, current_users, mode, value, active)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		strings.TrimSpace(d.Code), d.Name, d.StartDate, d.EndDate,
		d.MaxUsers, d.CurrentUsers, string(d.Mode), d.Value, d.Active)
	return err
}

func (r DiscountRepository) Save(d core.DiscountRule) error {
	if strings.TrimSpace(d.Code) == "" {
		return fmt.Errorf("discount code is required")
	}
	_, err := r.db().Exec(`UPDATE discounts SET name=?, start_date=?, end_date=?, max_users=?, mode=?, value=?, active=?
		WHERE code=?`,
		d.Name, d.StartDate, d.EndDate, d.MaxUsers, string(d.Mode), d.Value, d.Active,
		strings.TrimSpace(d.Code))
	return err
}

func (r DiscountRepository) Delete(code string) error {
	_, err := r.db().Exec(`DELETE FROM discounts WHERE code=?`, strings.TrimSpace(code))
	return err
}

// RedeemTx increments current_users exactly once, guarded inside tx by the
// same predicate the validity check uses. Zero rows affected means the rule
// is unusable (capped, inactive, or outside its window) at commit time, which
// closes the read-then-write race of the legacy flow.
func (r DiscountRepository) RedeemTx(tx *sql.Tx, code string, at time.Time) (bool, error) {
	res, err := tx.Exec(`
		UPDATE discounts
		SET current_users = current_users + 1
		WHERE code=? AND active=1
		  AND start_date <= ? AND end_date >= ?
		  AND current_users < max_users`,
		strings.TrimSpace(code), at, at)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
