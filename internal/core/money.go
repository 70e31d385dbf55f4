// Package core provides money parsing and formatting utilities.
//
// Amounts are whole rupees held in int64. Formatting uses Indian-locale style
// prefixes but western thousands grouping, which is what the simulator shows.
package core

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const rupee = "₹"

var ErrInvalidAmount = errors.New("invalid amount")

// ParseRupees converts user input into whole rupees.
//
// It accepts an optional sign, an optional ₹ prefix and comma or underscore
// grouping. Fractional amounts are rejected.
//
// Examples:
//
//	ParseRupees("12,000") -> 12000, nil
//	ParseRupees("-3000")  -> -3000, nil
//	ParseRupees("₹500")   -> 500, nil
//	ParseRupees("12.5")   -> 0, ErrInvalidAmount
func ParseRupees(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), rupee)
	s = strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if neg {
		v = -v
	}
	return v, nil
}

// FormatRupees renders an amount as "₹12,000" or "-₹3,000".
func FormatRupees(v int64) string {
	if v < 0 {
		return "-" + rupee + humanize.Comma(-v)
	}
	return rupee + humanize.Comma(v)
}

// FormatSignedRupees always carries a sign, "+₹0" included.
func FormatSignedRupees(v int64) string {
	if v < 0 {
		return FormatRupees(v)
	}
	return "+" + FormatRupees(v)
}
