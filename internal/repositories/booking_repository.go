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

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, booking_ref, name, email, whatsapp,
	pickup_location, COALESCE(pickup_date, ''), pickup_time,
	return_location, COALESCE(return_date, ''), return_time,
	tuk_count, license_count,
	COALESCE(extras, ''), COALESCE(train_transfer, ''),
	pickup_price, return_price, coupon_code, rental_price,
	is_booked, status, COALESCE(assigned_tuks, ''),
	assigned_person, holdback_person, train_transfer_person,
	license_number, passport_number, payment_link, created_at`

func (r BookingRepository) scanBooking(row *sql.Row) (models.Booking, error) {
	var b models.Booking
	var extrasRaw, trainRaw, tuksRaw string
	err := row.Scan(
		&b.ID, &b.BookingRef, &b.Name, &b.Email, &b.WhatsApp,
		&b.PickupLocation, &b.PickupDate, &b.PickupTime,
		&b.ReturnLocation, &b.ReturnDate, &b.ReturnTime,
		&b.TukCount, &b.LicenseCount,
		&extrasRaw, &trainRaw,
		&b.PickupPrice, &b.ReturnPrice, &b.CouponCode, &b.RentalPrice,
		&b.IsBooked, &b.Status, &tuksRaw,
		&b.AssignedPerson, &b.HoldbackPerson, &b.TrainTransferPerson,
		&b.LicenseNumber, &b.PassportNumber, &b.PaymentLink, &b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if extrasRaw != "" {
		_ = json.Unmarshal([]byte(extrasRaw), &b.Extras)
	}
	if trainRaw != "" {
		var tt models.TrainTransferInfo
		if json.Unmarshal([]byte(trainRaw), &tt) == nil {
			b.TrainTransfer = &tt
		}
	}
	if tuksRaw != "" {
		_ = json.Unmarshal([]byte(tuksRaw), &b.AssignedTuks)
	}
	// dates come back as "2026-03-10" or RFC3339 depending on column driver
	b.PickupDate = dateOnly(b.PickupDate)
	b.ReturnDate = dateOnly(b.ReturnDate)
	return b, nil
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, fmt.Errorf("invalid booking id")
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := r.scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, fmt.Errorf("booking not found")
	}
	return b, err
}

func (r BookingRepository) GetByRef(ref string) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE booking_ref=? LIMIT 1`, strings.TrimSpace(ref))
	b, err := r.scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, fmt.Errorf("booking not found")
	}
	return b, err
}

// List returns bookings newest first, optionally filtered by status.
// status == "new" selects submitted but untouched bookings (empty status).
func (r BookingRepository) List(status string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	switch strings.TrimSpace(status) {
	case "":
	case "new":
		query += ` WHERE status=''`
	default:
		query += ` WHERE status=?`
		args = append(args, strings.TrimSpace(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var extrasRaw, trainRaw, tuksRaw string
		if err := rows.Scan(
			&b.ID, &b.BookingRef, &b.Name, &b.Email, &b.WhatsApp,
			&b.PickupLocation, &b.PickupDate, &b.PickupTime,
			&b.ReturnLocation, &b.ReturnDate, &b.ReturnTime,
			&b.TukCount, &b.LicenseCount,
			&extrasRaw, &trainRaw,
			&b.PickupPrice, &b.ReturnPrice, &b.CouponCode, &b.RentalPrice,
			&b.IsBooked, &b.Status, &tuksRaw,
			&b.AssignedPerson, &b.HoldbackPerson, &b.TrainTransferPerson,
			&b.LicenseNumber, &b.PassportNumber, &b.PaymentLink, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		if extrasRaw != "" {
			_ = json.Unmarshal([]byte(extrasRaw), &b.Extras)
		}
		if trainRaw != "" {
			var tt models.TrainTransferInfo
			if json.Unmarshal([]byte(trainRaw), &tt) == nil {
				b.TrainTransfer = &tt
			}
		}
		if tuksRaw != "" {
			_ = json.Unmarshal([]byte(tuksRaw), &b.AssignedTuks)
		}
		b.PickupDate = dateOnly(b.PickupDate)
		b.ReturnDate = dateOnly(b.ReturnDate)
		out = append(out, b)
	}
	return out, rows.Err()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Create inserts a new booking and returns its id. created_at is set by the
// database and never updated afterwards.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	return r.insert(r.db(), b)
}

// CreateTx inserts within the caller's transaction so the booking row and
// its coupon redemption commit or roll back together.
func (r BookingRepository) CreateTx(tx *sql.Tx, b models.Booking) (int64, error) {
	return r.insert(tx, b)
}

func (r BookingRepository) insert(e execer, b models.Booking) (int64, error) {
	extrasJSON, _ := json.Marshal(b.Extras)
	var trainJSON any
	if b.TrainTransfer != nil {
		raw, _ := json.Marshal(b.TrainTransfer)
		trainJSON = string(raw)
	}

	res, err := e.Exec(`
		INSERT INTO bookings (
			booking_ref, name, email, whatsapp,
			pickup_location, pickup_date, pickup_time,
			return_location, return_date, return_time,
			tuk_count, license_count, extras, train_transfer,
			pickup_price, return_price, coupon_code, rental_price,
			is_booked, status, license_number, passport_number
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.BookingRef, b.Name, b.Email, b.WhatsApp,
		b.PickupLocation, intdb.NullIfEmpty(strings.TrimSpace(b.PickupDate)), b.PickupTime,
		b.ReturnLocation, intdb.NullIfEmpty(strings.TrimSpace(b.ReturnDate)), b.ReturnTime,
		b.TukCount, b.LicenseCount, string(extrasJSON), trainJSON,
		b.PickupPrice, b.ReturnPrice, b.CouponCode, b.RentalPrice,
		b.IsBooked, b.Status, b.LicenseNumber, b.PassportNumber,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update performs PATCH-style updates based on field presence.
func (r BookingRepository) Update(id int64, upd models.BookingUpdate) error {
	if id <= 0 {
		return fmt.Errorf("invalid booking id")
	}
	sets := []string{}
	args := []any{}

	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if upd.AssignedTuks != nil {
		raw, _ := json.Marshal(*upd.AssignedTuks)
		sets = append(sets, "assigned_tuks=?")
		args = append(args, string(raw))
	}
	if upd.AssignedPerson != nil {
		sets = append(sets, "assigned_person=?")
		args = append(args, strings.TrimSpace(*upd.AssignedPerson))
	}
	if upd.HoldbackPerson != nil {
		sets = append(sets, "holdback_person=?")
		args = append(args, strings.TrimSpace(*upd.HoldbackPerson))
	}
	if upd.TrainTransferPerson != nil {
		sets = append(sets, "train_transfer_person=?")
		args = append(args, strings.TrimSpace(*upd.TrainTransferPerson))
	}
	if upd.RentalPrice != nil {
		sets = append(sets, "rental_price=?")
		args = append(args, strings.TrimSpace(*upd.RentalPrice))
	}
	if upd.PaymentLink != nil {
		sets = append(sets, "payment_link=?")
		args = append(args, strings.TrimSpace(*upd.PaymentLink))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r BookingRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid booking id")
	}
	_, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	return err
}
