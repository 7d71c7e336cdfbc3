package domain

import (
	"math"
	"time"
)

// ExtraType distinguishes add-ons charged once from add-ons charged per day.
// It only affects how quantities are presented; the stored total is always
// quantity x price.
type ExtraType string

const (
	ExtraFlat   ExtraType = "flat"
	ExtraPerDay ExtraType = "perday"
)

// Extra is a configurable optional add-on (helmet, surf rack, driver, ...).
type Extra struct {
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Type  ExtraType `json:"type"`
}

// FeeItem is an amount with a customer-facing description.
type FeeItem struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// MasterPrices is the single pricing configuration document consulted by the
// quote calculator.
type MasterPrices struct {
	DailyRates        []RateRule `json:"dailyRates"`
	LicenseFee        FeeItem    `json:"licenseFee"`
	OptionalExtras    []Extra    `json:"optionalExtras"`
	RefundableDeposit FeeItem    `json:"refundableDeposit"`
}

// QuoteInput carries everything the price formula needs. Extras maps extra
// name to the quantity chosen on the booking form.
type QuoteInput struct {
	TukCount           int
	LicenseCount       int
	PickupDate         time.Time
	ReturnDate         time.Time
	Extras             map[string]int
	TrainTransferPrice float64
	PickupPrice        float64
	ReturnPrice        float64
}

// QuoteBreakdown is the result of a price computation, itemised so the admin
// UI can render each component.
type QuoteBreakdown struct {
	RentalDays        int     `json:"rentalDays"`
	PerDayCharge      float64 `json:"perDayCharge"`
	RentalCharge      float64 `json:"rentalCharge"`
	LicenseFee        float64 `json:"licenseFee"`
	ExtrasTotal       float64 `json:"extrasTotal"`
	TrainTransfer     float64 `json:"trainTransfer"`
	PickupPrice       float64 `json:"pickupPrice"`
	ReturnPrice       float64 `json:"returnPrice"`
	RefundableDeposit float64 `json:"refundableDeposit"`
	Total             float64 `json:"total"`
}

// RentalDays counts chargeable days inclusive of both endpoints: a span of
// any length counts ceil(days)+1, and a same-day rental still counts as 1.
func RentalDays(pickup, ret time.Time) int {
	if !ret.After(pickup) {
		return 1
	}
	span := ret.Sub(pickup).Hours() / 24
	return int(math.Ceil(span)) + 1
}

// ExtrasTotal sums booked quantities against the configured price list.
// Extras not present in the configuration are ignored.
func ExtrasTotal(booked map[string]int, configured []Extra) float64 {
	if len(booked) == 0 {
		return 0
	}
	var total float64
	for _, extra := range configured {
		qty := booked[extra.Name]
		if qty <= 0 {
			continue
		}
		total += float64(qty) * extra.Price
	}
	return total
}

// ComputeQuote applies the full booking price formula against the given
// configuration. Pure; persistence of the result is the caller's concern.
func ComputeQuote(in QuoteInput, prices MasterPrices) QuoteBreakdown {
	days := RentalDays(in.PickupDate, in.ReturnDate)
	perDay := PerDayCharge(days, prices.DailyRates)

	b := QuoteBreakdown{
		RentalDays:        days,
		PerDayCharge:      perDay,
		RentalCharge:      float64(days*in.TukCount) * perDay,
		LicenseFee:        float64(in.LicenseCount) * prices.LicenseFee.Amount,
		ExtrasTotal:       ExtrasTotal(in.Extras, prices.OptionalExtras),
		TrainTransfer:     in.TrainTransferPrice,
		PickupPrice:       in.PickupPrice,
		ReturnPrice:       in.ReturnPrice,
		RefundableDeposit: prices.RefundableDeposit.Amount,
	}
	b.Total = b.RentalCharge + b.LicenseFee + b.ExtrasTotal +
		b.TrainTransfer + b.PickupPrice + b.ReturnPrice + b.RefundableDeposit
	return b
}
