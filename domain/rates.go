package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RateRule maps a rental-duration range to a per-day price.
// Duration descriptors come from the master-prices document in one of three
// forms: "4 days", "5-16 days", "121+ days".
type RateRule struct {
	Duration    string  `json:"duration"`
	PricePerDay float64 `json:"pricePerDay"`
}

// DurationRange is the parsed form of a rate rule descriptor.
// Max is math.MaxInt for the open "N+" form.
type DurationRange struct {
	Min int
	Max int
}

func (r DurationRange) Contains(days int) bool {
	return days >= r.Min && days <= r.Max
}

// ParseDurationRange parses "N days", "N-M days" and "N+ days" descriptors.
func ParseDurationRange(descriptor string) (DurationRange, error) {
	s := strings.TrimSpace(strings.ToLower(descriptor))
	s = strings.TrimSuffix(s, "days")
	s = strings.TrimSuffix(strings.TrimSpace(s), "day")
	s = strings.TrimSpace(s)
	if s == "" {
		return DurationRange{}, fmt.Errorf("empty duration descriptor")
	}

	if strings.HasSuffix(s, "+") {
		min, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "+")))
		if err != nil || min < 1 {
			return DurationRange{}, fmt.Errorf("invalid open duration %q", descriptor)
		}
		return DurationRange{Min: min, Max: math.MaxInt}, nil
	}

	if lo, hi, ok := strings.Cut(s, "-"); ok {
		min, err1 := strconv.Atoi(strings.TrimSpace(lo))
		max, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || min < 1 || max < min {
			return DurationRange{}, fmt.Errorf("invalid duration range %q", descriptor)
		}
		return DurationRange{Min: min, Max: max}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DurationRange{}, fmt.Errorf("invalid duration %q", descriptor)
	}
	return DurationRange{Min: n, Max: n}, nil
}

// fallbackLadder is the hardcoded per-day pricing used when no master-prices
// configuration is available. Thresholds are evaluated top-down, first match
// wins. Kept for compatibility with historical quotes.
var fallbackLadder = []struct {
	MinDays int
	Price   float64
}{
	{121, 8},
	{91, 10},
	{36, 11},
	{20, 12},
	{16, 13},
	{9, 15},
	{5, 16},
	{1, 23},
}

// FallbackPerDayCharge resolves the per-day price from the hardcoded ladder.
func FallbackPerDayCharge(rentalDays int) float64 {
	if rentalDays < 1 {
		rentalDays = 1
	}
	for _, slab := range fallbackLadder {
		if rentalDays >= slab.MinDays {
			return slab.Price
		}
	}
	return fallbackLadder[len(fallbackLadder)-1].Price
}

// PerDayCharge resolves rentalDays against the configured rate table.
// The first rule whose range contains rentalDays wins; when no range matches
// exactly, the rule with the largest Min still <= rentalDays is used.
// An empty or fully unparsable table degrades to the fallback ladder.
func PerDayCharge(rentalDays int, rules []RateRule) float64 {
	if rentalDays < 1 {
		rentalDays = 1
	}

	type parsed struct {
		rng   DurationRange
		price float64
	}
	table := make([]parsed, 0, len(rules))
	for _, rule := range rules {
		rng, err := ParseDurationRange(rule.Duration)
		if err != nil {
			continue
		}
		table = append(table, parsed{rng: rng, price: rule.PricePerDay})
	}
	if len(table) == 0 {
		return FallbackPerDayCharge(rentalDays)
	}

	for _, p := range table {
		if p.rng.Contains(rentalDays) {
			return p.price
		}
	}

	// Closest-below match keeps long rentals priced by the nearest slab.
	best := -1
	for i, p := range table {
		if p.rng.Min > rentalDays {
			continue
		}
		if best < 0 || p.rng.Min > table[best].rng.Min {
			best = i
		}
	}
	if best >= 0 {
		return table[best].price
	}
	return FallbackPerDayCharge(rentalDays)
}
