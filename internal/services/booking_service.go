package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	core "tukrent/domain"
	intconfig "tukrent/internal/config"
	"tukrent/internal/domain"
	"tukrent/internal/domain/models"
	"tukrent/internal/notify"
	"tukrent/internal/repositories"
	"tukrent/internal/utils"
)

// BookingService drives the booking lifecycle. Every transition is validated
// against the closed status table before anything is written, and outbound
// notifications fire only after the write has been confirmed. A failed
// notification is logged and does not undo the persisted state.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	Pricing     PricingService
	Discounts   DiscountService
	Notifier    notify.Notifier
	DB          *sql.DB
	RequestID   string
}

// AssignRequest carries the admin's vehicle/agent selection.
type AssignRequest struct {
	AssignedTuks        []string `json:"assignedTuks"`
	AssignedPerson      string   `json:"assignedPerson"`
	HoldbackPerson      string   `json:"holdBackAssignedPerson"`
	TrainTransferPerson string   `json:"trainTransferAssignedPerson"`
	Recalculate         bool     `json:"recalculate"`
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Create stores a public-form booking: reference assigned, price computed and
// persisted, coupon (when given) redeemed exactly once.
func (s BookingService) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	if b.Name == "" {
		return models.Booking{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if b.Email == "" {
		return models.Booking{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if b.TukCount < 1 {
		return models.Booking{}, domain.ValidationError{Field: "tukCount", Msg: "must be at least 1"}
	}

	quote, err := s.Pricing.QuoteForBooking(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	total := quote.Total

	b.CouponCode = strings.TrimSpace(b.CouponCode)
	var rule core.DiscountRule
	if b.CouponCode != "" {
		rule, err = s.Discounts.Validate(b.CouponCode)
		if err != nil {
			return models.Booking{}, err
		}
	}

	b.BookingRef = newBookingRef()
	b.IsBooked = true
	b.Status = string(core.StatusNew)

	// Redemption and the booking row commit together: a failed insert must
	// not leave a consumed coupon use behind.
	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if b.CouponCode != "" {
		total, err = s.Discounts.redeemIn(tx, rule, total)
		if err != nil {
			_ = tx.Rollback()
			return models.Booking{}, err
		}
	}
	b.RentalPrice = utils.FormatMoney(total)

	id, err := s.bookings().CreateTx(tx, b)
	if err != nil {
		_ = tx.Rollback()
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	b.ID = id
	utils.LogEvent(s.RequestID, "booking", "create", "ref="+b.BookingRef)
	return b, nil
}

// Assign moves a new booking to assigned. The guard requires one non-empty
// vehicle per requested tuk and a handover agent; the price is recomputed
// only when asked for and never over a coupon-discounted total.
func (s BookingService) Assign(ctx context.Context, id int64, req AssignRequest) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}

	status, err := core.ParseStatus(b.Status)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "stored status invalid", Err: err}
	}
	if !core.CanTransition(status, core.StatusAssigned) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot assign a booking in status %q", b.Status),
		}
	}
	if err := core.ValidateAssignment(req.AssignedTuks, b.TukCount, req.AssignedPerson); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "assignment", Msg: err.Error()}
	}

	rentalPrice := b.RentalPrice
	if req.Recalculate {
		if b.CouponCode != "" {
			return models.Booking{}, domain.ConflictError{
				Resource: "booking",
				Msg:      "recalculation is disabled while a coupon is applied",
			}
		}
		quote, err := s.Pricing.QuoteForBooking(ctx, b)
		if err != nil {
			return models.Booking{}, err
		}
		rentalPrice = utils.FormatMoney(quote.Total)
	}

	newStatus := string(core.StatusAssigned)
	upd := models.BookingUpdate{
		Status:              &newStatus,
		AssignedTuks:        &req.AssignedTuks,
		AssignedPerson:      &req.AssignedPerson,
		HoldbackPerson:      &req.HoldbackPerson,
		TrainTransferPerson: &req.TrainTransferPerson,
		RentalPrice:         &rentalPrice,
	}
	if err := s.bookings().Update(id, upd); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	b.Status = newStatus
	b.AssignedTuks = req.AssignedTuks
	b.AssignedPerson = req.AssignedPerson
	b.HoldbackPerson = req.HoldbackPerson
	b.TrainTransferPerson = req.TrainTransferPerson
	b.RentalPrice = rentalPrice

	// Write is committed; notification failure must not undo it.
	if s.Notifier != nil {
		if err := s.Notifier.SendAssignment(assignmentPayload(b)); err != nil {
			utils.LogEvent(s.RequestID, "booking", "assign", "notification failed: "+err.Error())
		}
	}
	utils.LogEvent(s.RequestID, "booking", "assign", "ref="+b.BookingRef)
	return b, nil
}

// MarkOnboard records the hand-over for an assigned booking.
func (s BookingService) MarkOnboard(id int64) (models.Booking, error) {
	return s.transition(id, core.StatusOnboard, nil)
}

// MarkFinished closes the rental and fires the completion notification.
func (s BookingService) MarkFinished(id int64) (models.Booking, error) {
	return s.transition(id, core.StatusFinished, func(b models.Booking) {
		if s.Notifier == nil {
			return
		}
		if err := s.Notifier.SendCompletion(b); err != nil {
			utils.LogEvent(s.RequestID, "booking", "finish", "notification failed: "+err.Error())
		}
	})
}

// AttachPaymentLink starts the payment branch for a submitted booking and
// messages the customer on WhatsApp.
func (s BookingService) AttachPaymentLink(ctx context.Context, id int64, link string, recalculate bool) (models.Booking, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return models.Booking{}, domain.ValidationError{Field: "paymentLink", Msg: "payment link is required"}
	}

	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if !b.IsBooked {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "booking form was never completed"}
	}

	status, err := core.ParseStatus(b.Status)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "stored status invalid", Err: err}
	}
	if !core.CanTransition(status, core.StatusPendingPayment) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot request payment for a booking in status %q", b.Status),
		}
	}

	rentalPrice := b.RentalPrice
	if recalculate {
		if b.CouponCode != "" {
			return models.Booking{}, domain.ConflictError{
				Resource: "booking",
				Msg:      "recalculation is disabled while a coupon is applied",
			}
		}
		quote, err := s.Pricing.QuoteForBooking(ctx, b)
		if err != nil {
			return models.Booking{}, err
		}
		rentalPrice = utils.FormatMoney(quote.Total)
	}

	newStatus := string(core.StatusPendingPayment)
	upd := models.BookingUpdate{
		Status:      &newStatus,
		PaymentLink: &link,
		RentalPrice: &rentalPrice,
	}
	if err := s.bookings().Update(id, upd); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	b.Status = newStatus
	b.PaymentLink = link
	b.RentalPrice = rentalPrice

	if s.Notifier != nil && b.WhatsApp != "" {
		msg := fmt.Sprintf("Hi %s, please complete your tuk-tuk booking %s (%s) here: %s",
			b.Name, b.BookingRef, b.RentalPrice, link)
		if err := s.Notifier.SendWhatsApp(b.WhatsApp, msg); err != nil {
			utils.LogEvent(s.RequestID, "booking", "payment_link", "whatsapp failed: "+err.Error())
		}
	}
	return b, nil
}

// MarkPaid confirms the payment branch.
func (s BookingService) MarkPaid(id int64) (models.Booking, error) {
	return s.transition(id, core.StatusPaid, nil)
}

// transition applies a guarded single-field status move and runs after only
// once the write is confirmed.
func (s BookingService) transition(id int64, to core.BookingStatus, after func(models.Booking)) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}

	status, err := core.ParseStatus(b.Status)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "stored status invalid", Err: err}
	}
	if !core.CanTransition(status, to) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot move booking from %q to %q", b.Status, to),
		}
	}

	newStatus := string(to)
	if err := s.bookings().Update(id, models.BookingUpdate{Status: &newStatus}); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	b.Status = newStatus

	if after != nil {
		after(b)
	}
	utils.LogEvent(s.RequestID, "booking", "transition", fmt.Sprintf("ref=%s status=%s", b.BookingRef, newStatus))
	return b, nil
}

func assignmentPayload(b models.Booking) notify.AssignmentPayload {
	return notify.AssignmentPayload{
		BookingRef:          b.BookingRef,
		Name:                b.Name,
		WhatsApp:            b.WhatsApp,
		PickupLocation:      b.PickupLocation,
		PickupDate:          b.PickupDate,
		PickupTime:          b.PickupTime,
		ReturnLocation:      b.ReturnLocation,
		ReturnDate:          b.ReturnDate,
		ReturnTime:          b.ReturnTime,
		AssignedTuks:        b.AssignedTuks,
		AssignedPerson:      b.AssignedPerson,
		HoldbackPerson:      b.HoldbackPerson,
		TrainTransferPerson: b.TrainTransferPerson,
		RentalPrice:         b.RentalPrice,
	}
}

func newBookingRef() string {
	return "TR-" + strings.ToUpper(uuid.NewString()[:8])
}
