package domain

import (
	"testing"
)

func activeRule() DiscountRule {
	return DiscountRule{
		Code:         "SUMMER10",
		Name:         "Summer promo",
		StartDate:    date(2026, 6, 1),
		EndDate:      date(2026, 8, 31),
		MaxUsers:     100,
		CurrentUsers: 10,
		Mode:         DiscountPercentage,
		Value:        10,
		Active:       true,
	}
}

func TestDiscountValidate(t *testing.T) {
	now := date(2026, 7, 15)

	if err := activeRule().Validate(now); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}

	inactive := activeRule()
	inactive.Active = false
	if err := inactive.Validate(now); err == nil {
		t.Fatalf("inactive rule accepted")
	}

	early := activeRule()
	if err := early.Validate(date(2026, 5, 31)); err == nil {
		t.Fatalf("rule accepted before window")
	}
	if err := early.Validate(date(2026, 9, 1)); err == nil {
		t.Fatalf("rule accepted after window")
	}
}

func TestDiscountCapBeatsWindow(t *testing.T) {
	// At the cap the rule is unusable even inside a valid window.
	capped := activeRule()
	capped.CurrentUsers = capped.MaxUsers
	if err := capped.Validate(date(2026, 7, 15)); err == nil {
		t.Fatalf("fully redeemed rule accepted")
	}
}

func TestDiscountApply(t *testing.T) {
	pct := activeRule()
	if got := pct.Apply(200); got != 180 {
		t.Fatalf("percentage apply = %v, want 180", got)
	}

	flat := activeRule()
	flat.Mode = DiscountReduce
	flat.Value = 25
	if got := flat.Apply(200); got != 175 {
		t.Fatalf("reduce apply = %v, want 175", got)
	}
	if got := flat.Apply(10); got != 0 {
		t.Fatalf("reduce apply floor = %v, want 0", got)
	}

	unknown := activeRule()
	unknown.Mode = "bogus"
	if got := unknown.Apply(200); got != 200 {
		t.Fatalf("unknown mode changed total: %v", got)
	}
}
