package view

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatManwon renders a manwon amount, switching to 억 (100M KRW) units
// once the number gets unwieldy.
func FormatManwon(amount float64) string {
	if amount >= 10_000 || amount <= -10_000 {
		return fmt.Sprintf("%.1f억", amount/10_000)
	}

	return fmt.Sprintf("%.0f만", amount)
}

// ParseAmount parses a user-typed manwon amount, tolerating grouping commas.
func ParseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// ValidateAmount is the huh validator counterpart of ParseAmount.
func ValidateAmount(s string) error {
	if _, err := ParseAmount(s); err != nil {
		return fmt.Errorf("enter a number (manwon)")
	}

	return nil
}

// ValidateInt rejects anything that is not a whole number.
func ValidateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}

	return nil
}
