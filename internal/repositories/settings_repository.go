package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "tukrent/internal/config"
	"tukrent/internal/domain/models"
)

const contactSettingsKey = "contact"

type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SettingsRepository) GetContact() (models.ContactSettings, error) {
	var raw []byte
	err := r.db().QueryRow(`SELECT payload FROM settings WHERE doc_key=? LIMIT 1`, contactSettingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContactSettings{}, fmt.Errorf("contact settings not found")
	}
	if err != nil {
		return models.ContactSettings{}, err
	}

	var cs models.ContactSettings
	if err := json.Unmarshal(raw, &cs); err != nil {
		return models.ContactSettings{}, fmt.Errorf("contact settings payload corrupt: %w", err)
	}
	return cs, nil
}

func (r SettingsRepository) SaveContact(cs models.ContactSettings) error {
	raw, err := json.Marshal(cs)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		INSERT INTO settings (doc_key, payload) VALUES (?,?)
		ON DUPLICATE KEY UPDATE payload=VALUES(payload)`,
		contactSettingsKey, raw)
	return err
}
