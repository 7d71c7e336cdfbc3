package db

import "database/sql"

// EnsureSchema creates any missing table. Statements stay idempotent so a
// fresh database and an existing one both end up usable.
func EnsureSchema(dbc *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_ref VARCHAR(40) NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			whatsapp VARCHAR(50) NOT NULL DEFAULT '',
			pickup_location VARCHAR(255) NOT NULL DEFAULT '',
			pickup_date DATE NULL,
			pickup_time VARCHAR(20) NOT NULL DEFAULT '',
			return_location VARCHAR(255) NOT NULL DEFAULT '',
			return_date DATE NULL,
			return_time VARCHAR(20) NOT NULL DEFAULT '',
			tuk_count INT NOT NULL DEFAULT 1,
			license_count INT NOT NULL DEFAULT 0,
			extras JSON NULL,
			train_transfer JSON NULL,
			pickup_price DECIMAL(10,2) NOT NULL DEFAULT 0,
			return_price DECIMAL(10,2) NOT NULL DEFAULT 0,
			coupon_code VARCHAR(50) NOT NULL DEFAULT '',
			rental_price VARCHAR(20) NOT NULL DEFAULT '',
			is_booked TINYINT(1) NOT NULL DEFAULT 0,
			status VARCHAR(30) NOT NULL DEFAULT '',
			assigned_tuks JSON NULL,
			assigned_person VARCHAR(255) NOT NULL DEFAULT '',
			holdback_person VARCHAR(255) NOT NULL DEFAULT '',
			train_transfer_person VARCHAR(255) NOT NULL DEFAULT '',
			license_number VARCHAR(100) NOT NULL DEFAULT '',
			passport_number VARCHAR(100) NOT NULL DEFAULT '',
			payment_link VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_booking_ref (booking_ref),
			KEY idx_status (status),
			KEY idx_pickup_date (pickup_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS tuktuks (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			owner VARCHAR(255) NOT NULL DEFAULT '',
			vehicle_number VARCHAR(50) NOT NULL,
			assigned_users JSON NULL,
			district VARCHAR(100) NOT NULL DEFAULT '',
			province VARCHAR(100) NOT NULL DEFAULT '',
			manufacture_year INT NOT NULL DEFAULT 0,
			insurance_expiry DATE NULL,
			license_expiry DATE NULL,
			active TINYINT(1) NOT NULL DEFAULT 1,
			UNIQUE KEY uniq_vehicle_number (vehicle_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS locations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			UNIQUE KEY uniq_location_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS persons (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			contact VARCHAR(100) NOT NULL DEFAULT '',
			district VARCHAR(100) NOT NULL DEFAULT '',
			province VARCHAR(100) NOT NULL DEFAULT '',
			is_active TINYINT(1) NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS train_transfers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			route_from VARCHAR(255) NOT NULL,
			route_to VARCHAR(255) NOT NULL,
			pickup_time VARCHAR(20) NOT NULL DEFAULT '',
			down_time VARCHAR(20) NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			status TINYINT(1) NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS discounts (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			max_users INT NOT NULL DEFAULT 0,
			current_users INT NOT NULL DEFAULT 0,
			mode VARCHAR(20) NOT NULL DEFAULT 'percentage',
			value DECIMAL(10,2) NOT NULL DEFAULT 0,
			active TINYINT(1) NOT NULL DEFAULT 1,
			UNIQUE KEY uniq_discount_code (code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS master_prices (
			doc_key VARCHAR(50) PRIMARY KEY,
			payload JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS vehicle_status (
			category VARCHAR(50) PRIMARY KEY,
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			deactivate_until DATETIME NULL,
			base_price DECIMAL(10,2) NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS settings (
			doc_key VARCHAR(50) PRIMARY KEY,
			payload JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS admins (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'admin',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_admin_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, stmt := range stmts {
		if _, err := dbc.Exec(stmt); err != nil {
			return err
		}
	}
	return ensureBookingColumns(dbc)
}

// ensureBookingColumns adds columns introduced after early deployments.
// CREATE TABLE IF NOT EXISTS does not touch an existing table, so these
// have to be checked one by one.
func ensureBookingColumns(dbc *sql.DB) error {
	additions := []struct {
		column string
		ddl    string
	}{
		{"payment_link", `ALTER TABLE bookings ADD COLUMN payment_link VARCHAR(500) NOT NULL DEFAULT ''`},
		{"train_transfer_person", `ALTER TABLE bookings ADD COLUMN train_transfer_person VARCHAR(255) NOT NULL DEFAULT ''`},
		{"passport_number", `ALTER TABLE bookings ADD COLUMN passport_number VARCHAR(100) NOT NULL DEFAULT ''`},
	}
	for _, a := range additions {
		if HasColumn(dbc, "bookings", a.column) {
			continue
		}
		if _, err := dbc.Exec(a.ddl); err != nil {
			return err
		}
	}
	return nil
}
