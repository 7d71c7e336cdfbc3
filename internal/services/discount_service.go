package services

import (
	"database/sql"
	"fmt"
	"time"

	core "tukrent/domain"
	intconfig "tukrent/internal/config"
	"tukrent/internal/domain"
	"tukrent/internal/repositories"
	"tukrent/internal/utils"
)

// DiscountService validates and redeems coupon codes. Redemption increments
// the usage counter with a conditional update inside a transaction, so two
// concurrent checkouts cannot push a rule past its cap.
type DiscountService struct {
	DiscountRepo repositories.DiscountRepository
	DB           *sql.DB
	RequestID    string
	Now          func() time.Time
}

func (s DiscountService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DiscountService) discounts() repositories.DiscountRepository {
	if s.DiscountRepo.DB != nil {
		return s.DiscountRepo
	}
	return repositories.DiscountRepository{DB: s.db()}
}

func (s DiscountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Validate checks a code without consuming a redemption.
func (s DiscountService) Validate(code string) (core.DiscountRule, error) {
	if code == "" {
		return core.DiscountRule{}, domain.ValidationError{Field: "code", Msg: "coupon code is required"}
	}
	rule, err := s.discounts().GetByCode(code)
	if err != nil {
		return core.DiscountRule{}, domain.NotFoundError{Resource: "discount", Err: err}
	}
	if err := rule.Validate(s.now()); err != nil {
		return core.DiscountRule{}, domain.ConflictError{Resource: "discount", Msg: err.Error()}
	}
	return rule, nil
}

// Redeem consumes one use of the rule and returns the discounted total.
func (s DiscountService) Redeem(code string, total float64) (float64, error) {
	rule, err := s.Validate(code)
	if err != nil {
		return 0, err
	}

	tx, err := s.db().Begin()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	discounted, err := s.redeemIn(tx, rule, total)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return discounted, nil
}

// redeemIn consumes one use inside the caller's transaction. The caller owns
// commit and rollback; redemption only becomes visible with the rest of the
// transaction.
func (s DiscountService) redeemIn(tx *sql.Tx, rule core.DiscountRule, total float64) (float64, error) {
	ok, err := s.discounts().RedeemTx(tx, rule.Code, s.now())
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if !ok {
		return 0, domain.ConflictError{
			Resource: "discount",
			Msg:      fmt.Sprintf("coupon %s can no longer be redeemed", rule.Code),
		}
	}
	utils.LogEvent(s.RequestID, "discount", "redeem", "code="+rule.Code)
	return rule.Apply(total), nil
}
