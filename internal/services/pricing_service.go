package services

import (
	"context"
	"database/sql"
	"errors"

	core "tukrent/domain"
	"tukrent/internal/cache"
	"tukrent/internal/domain"
	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
	"tukrent/internal/utils"
)

// PricingService resolves the master-prices configuration and runs the quote
// formula against it. Reads go through the cache; a missing configuration
// document degrades to the hardcoded ladder, logged so the degradation is
// visible instead of silent.
type PricingService struct {
	MasterPriceRepo repositories.MasterPriceRepository
	Cache           *cache.Cache
	DB              *sql.DB
	RequestID       string
}

func (s PricingService) repo() repositories.MasterPriceRepository {
	if s.MasterPriceRepo.DB != nil {
		return s.MasterPriceRepo
	}
	return repositories.MasterPriceRepository{DB: s.DB}
}

// MasterPrices returns the configured pricing document, or a zero document
// when none exists. The zero document makes ComputeQuote fall back to the
// ladder with zero license fee and deposit, matching historical behaviour.
func (s PricingService) MasterPrices(ctx context.Context) core.MasterPrices {
	var prices core.MasterPrices
	if s.Cache.GetJSON(ctx, cache.KeyMasterPrices, &prices) {
		return prices
	}

	prices, err := s.repo().Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNoMasterPrices) {
			utils.LogEvent(s.RequestID, "pricing", "load", "master prices missing, using fallback ladder")
		} else {
			utils.LogEvent(s.RequestID, "pricing", "load", "master prices load failed, using fallback ladder: "+err.Error())
		}
		return core.MasterPrices{}
	}

	if err := s.Cache.SetJSON(ctx, cache.KeyMasterPrices, prices); err != nil {
		utils.LogEvent(s.RequestID, "pricing", "cache", "set failed: "+err.Error())
	}
	return prices
}

// SaveMasterPrices writes the configuration and drops the cached copy.
func (s PricingService) SaveMasterPrices(ctx context.Context, prices core.MasterPrices) error {
	for _, rule := range prices.DailyRates {
		if _, err := core.ParseDurationRange(rule.Duration); err != nil {
			return domain.ValidationError{Field: "dailyRates", Msg: err.Error()}
		}
		if rule.PricePerDay < 0 {
			return domain.ValidationError{Field: "dailyRates", Msg: "price per day cannot be negative"}
		}
	}
	if err := s.repo().Save(prices); err != nil {
		return domain.InternalError{Err: err}
	}
	if err := s.Cache.Invalidate(ctx, cache.KeyMasterPrices); err != nil {
		utils.LogEvent(s.RequestID, "pricing", "cache", "invalidate failed: "+err.Error())
	}
	return nil
}

// QuoteForBooking runs the price formula over a stored booking.
func (s PricingService) QuoteForBooking(ctx context.Context, b models.Booking) (core.QuoteBreakdown, error) {
	in, err := quoteInputFromBooking(b)
	if err != nil {
		return core.QuoteBreakdown{}, err
	}
	return core.ComputeQuote(in, s.MasterPrices(ctx)), nil
}

func quoteInputFromBooking(b models.Booking) (core.QuoteInput, error) {
	pickup, err := utils.ParseDate(b.PickupDate)
	if err != nil {
		return core.QuoteInput{}, domain.ValidationError{Field: "pickupDate", Msg: "invalid date", Err: err}
	}
	ret, err := utils.ParseDate(b.ReturnDate)
	if err != nil {
		return core.QuoteInput{}, domain.ValidationError{Field: "returnDate", Msg: "invalid date", Err: err}
	}
	if b.TukCount < 1 {
		return core.QuoteInput{}, domain.ValidationError{Field: "tukCount", Msg: "must be at least 1"}
	}

	in := core.QuoteInput{
		TukCount:     b.TukCount,
		LicenseCount: b.LicenseCount,
		PickupDate:   pickup,
		ReturnDate:   ret,
		Extras:       b.Extras,
		PickupPrice:  b.PickupPrice,
		ReturnPrice:  b.ReturnPrice,
	}
	if b.TrainTransfer != nil {
		in.TrainTransferPrice = b.TrainTransfer.Price
	}
	return in, nil
}
