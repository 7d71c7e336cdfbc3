package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	core "tukrent/domain"
	"tukrent/internal/domain"
	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

func newPricingService(t *testing.T) (PricingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := PricingService{
		MasterPriceRepo: repositories.MasterPriceRepository{DB: db},
		DB:              db,
	}
	return svc, mock
}

func TestMasterPricesFallsBackWhenUnconfigured(t *testing.T) {
	svc, mock := newPricingService(t)

	mock.ExpectQuery("SELECT(.+)FROM master_prices").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	prices := svc.MasterPrices(context.Background())
	if len(prices.DailyRates) != 0 {
		t.Fatalf("expected zero document, got %+v", prices)
	}
}

func TestQuoteForBookingUsesLadderWithoutConfig(t *testing.T) {
	svc, mock := newPricingService(t)

	mock.ExpectQuery("SELECT(.+)FROM master_prices").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	b := models.Booking{
		PickupDate: "2026-03-10",
		ReturnDate: "2026-03-14",
		TukCount:   2,
	}
	quote, err := svc.QuoteForBooking(context.Background(), b)
	if err != nil {
		t.Fatalf("QuoteForBooking error: %v", err)
	}
	// 5 rental days at the 16/day ladder step, two vehicles
	if quote.RentalDays != 5 {
		t.Fatalf("rental days = %d, want 5", quote.RentalDays)
	}
	if quote.Total != 160 {
		t.Fatalf("total = %v, want 160", quote.Total)
	}
}

func TestQuoteForBookingRejectsBadDate(t *testing.T) {
	svc, _ := newPricingService(t)

	_, err := svc.QuoteForBooking(context.Background(), models.Booking{
		PickupDate: "10/03/2026",
		ReturnDate: "2026-03-14",
		TukCount:   1,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveMasterPricesValidatesDescriptors(t *testing.T) {
	svc, _ := newPricingService(t)

	bad := core.MasterPrices{
		DailyRates: []core.RateRule{{Duration: "soon", PricePerDay: 12}},
	}
	if err := svc.SaveMasterPrices(context.Background(), bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveMasterPricesPersistsValidTable(t *testing.T) {
	svc, mock := newPricingService(t)

	mock.ExpectExec("INSERT INTO master_prices").
		WillReturnResult(sqlmock.NewResult(0, 1))

	prices := core.MasterPrices{
		DailyRates: []core.RateRule{
			{Duration: "1-4 days", PricePerDay: 23},
			{Duration: "5-8 days", PricePerDay: 16},
			{Duration: "121+ days", PricePerDay: 8},
		},
	}
	if err := svc.SaveMasterPrices(context.Background(), prices); err != nil {
		t.Fatalf("SaveMasterPrices error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
