package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

type TrainTransferRepository struct {
	DB *sql.DB
}

func (r TrainTransferRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TrainTransferRepository) List(activeOnly bool) ([]models.TrainTransferRoute, error) {
	query := `SELECT id, route_from, route_to, pickup_time, down_time, price, status FROM train_transfers`
	if activeOnly {
		query += ` WHERE status=1`
	}
	query += ` ORDER BY route_from, route_to`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TrainTransferRoute{}
	for rows.Next() {
		var t models.TrainTransferRoute
		if err := rows.Scan(&t.ID, &t.From, &t.To, &t.PickupTime, &t.DownTime, &t.Price, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TrainTransferRepository) GetByID(id int64) (models.TrainTransferRoute, error) {
	var t models.TrainTransferRoute
	err := r.db().QueryRow(`SELECT id, route_from, route_to, pickup_time, down_time, price, status
		FROM train_transfers WHERE id=? LIMIT 1`, id).
		Scan(&t.ID, &t.From, &t.To, &t.PickupTime, &t.DownTime, &t.Price, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrainTransferRoute{}, fmt.Errorf("train transfer not found")
	}
	return t, err
}

func (r TrainTransferRepository) Create(t models.TrainTransferRoute) (int64, error) {
	if strings.TrimSpace(t.From) == "" || strings.TrimSpace(t.To) == "" {
		return 0, fmt.Errorf("route endpoints are required")
	}
	res, err := r.db().Exec(`INSERT INTO train_transfers (route_from, route_to, pickup_time, down_time, price, status)
		VALUES (?,?,?,?,?,?)`,
		strings.TrimSpace(t.From), strings.TrimSpace(t.To), t.PickupTime, t.DownTime, t.Price, t.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TrainTransferRepository) Save(t models.TrainTransferRoute) error {
	if t.ID <= 0 {
		return fmt.Errorf("invalid train transfer id")
	}
	_, err := r.db().Exec(`UPDATE train_transfers SET route_from=?, route_to=?, pickup_time=?, down_time=?, price=?, status=?
		WHERE id=?`,
		strings.TrimSpace(t.From), strings.TrimSpace(t.To), t.PickupTime, t.DownTime, t.Price, t.Status, t.ID)
	return err
}

func (r TrainTransferRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid train transfer id")
	}
	_, err := r.db().Exec(`DELETE FROM train_transfers WHERE id=?`, id)
	return err
}
