package models

import "time"

// TrainTransferInfo is the optional add-on snapshot stored on a booking.
type TrainTransferInfo struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	PickupTime string  `json:"pickupTime"`
	DownTime   string  `json:"downTime"`
	Price      float64 `json:"price"`
}

// Booking is one rental reservation.
type Booking struct {
	ID         int64  `json:"id"`
	BookingRef string `json:"bookingId"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`

	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate"` // YYYY-MM-DD
	PickupTime     string `json:"pickupTime"`
	ReturnLocation string `json:"returnLocation"`
	ReturnDate     string `json:"returnDate"`
	ReturnTime     string `json:"returnTime"`

	TukCount     int `json:"tukCount"`
	LicenseCount int `json:"licenseCount"`

	Extras        map[string]int     `json:"extras"`
	TrainTransfer *TrainTransferInfo `json:"trainTransfer,omitempty"`
	PickupPrice   float64            `json:"pickupPrice"`
	ReturnPrice   float64            `json:"returnPrice"`
	CouponCode    string             `json:"couponCode"`

	// RentalPrice keeps the string-encoded decimal set when a quote is
	// persisted; empty until first computed.
	RentalPrice string `json:"rentalPrice"`

	IsBooked            bool     `json:"isBooked"`
	Status              string   `json:"status"`
	AssignedTuks        []string `json:"assignedTuks"`
	AssignedPerson      string   `json:"assignedPerson"`
	HoldbackPerson      string   `json:"holdBackAssignedPerson"`
	TrainTransferPerson string   `json:"trainTransferAssignedPerson"`

	LicenseNumber  string `json:"licenseNumber"`
	PassportNumber string `json:"passportNumber"`

	PaymentLink string    `json:"paymentLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingUpdate is a PATCH-style carrier: nil means "leave the column alone".
type BookingUpdate struct {
	Status              *string
	AssignedTuks        *[]string
	AssignedPerson      *string
	HoldbackPerson      *string
	TrainTransferPerson *string
	RentalPrice         *string
	PaymentLink         *string
}
