package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
// Rental prices are stored as this string form.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParseMoney parses a stored rental price back into a number. Accepts an
// optional currency prefix and thousand separators.
func ParseMoney(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToUpper(s), "USD")
	s = strings.TrimPrefix(strings.ToUpper(s), "LKR")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("invalid money amount")
	}
	return strconv.ParseFloat(s, 64)
}
