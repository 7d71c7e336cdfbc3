package domain

import (
	"fmt"
	"time"
)

// DiscountMode selects how a rule reduces a total.
type DiscountMode string

const (
	DiscountPercentage DiscountMode = "percentage"
	DiscountReduce     DiscountMode = "reduce"
)

// DiscountRule is a coupon definition with an active window and a usage cap.
type DiscountRule struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"`
	MaxUsers     int          `json:"maxUsers"`
	CurrentUsers int          `json:"currentUsers"`
	Mode         DiscountMode `json:"mode"`
	Value        float64      `json:"value"`
	Active       bool         `json:"active"`
}

// Validate reports why the rule cannot be used at the given moment, or nil.
// The usage cap is checked regardless of window validity.
func (r DiscountRule) Validate(at time.Time) error {
	if r.CurrentUsers >= r.MaxUsers {
		return fmt.Errorf("discount %s is fully redeemed", r.Code)
	}
	if !r.Active {
		return fmt.Errorf("discount %s is inactive", r.Code)
	}
	if at.Before(r.StartDate) || at.After(r.EndDate) {
		return fmt.Errorf("discount %s is outside its active window", r.Code)
	}
	return nil
}

// Apply returns total after the rule's reduction, floored at zero.
func (r DiscountRule) Apply(total float64) float64 {
	var discounted float64
	switch r.Mode {
	case DiscountPercentage:
		discounted = total * (1 - r.Value/100)
	case DiscountReduce:
		discounted = total - r.Value
	default:
		return total
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}
