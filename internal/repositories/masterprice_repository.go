package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	core "tukrent/domain"
	intconfig "tukrent/internal/config"
)

// masterPricesKey addresses the singleton pricing document.
const masterPricesKey = "pricing"

// ErrNoMasterPrices marks the configuration-absent case so callers can
// degrade to the fallback ladder instead of failing.
var ErrNoMasterPrices = errors.New("master prices document not found")

type MasterPriceRepository struct {
	DB *sql.DB
}

func (r MasterPriceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MasterPriceRepository) Get() (core.MasterPrices, error) {
	var raw []byte
	err := r.db().QueryRow(`SELECT payload FROM master_prices WHERE doc_key=? LIMIT 1`, masterPricesKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return core.MasterPrices{}, ErrNoMasterPrices
	}
	if err != nil {
		return core.MasterPrices{}, err
	}

	var prices core.MasterPrices
	if err := json.Unmarshal(raw, &prices); err != nil {
		return core.MasterPrices{}, fmt.Errorf("master prices payload corrupt: %w", err)
	}
	return prices, nil
}

func (r MasterPriceRepository) Save(prices core.MasterPrices) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		INSERT INTO master_prices (doc_key, payload) VALUES (?,?)
		ON DUPLICATE KEY UPDATE payload=VALUES(payload)`,
		masterPricesKey, raw)
	return err
}
