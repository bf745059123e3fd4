package cli

import (
	"fmt"
	"math"
	"strings"

	"option-strategist/internal/models"
)

// FormatMoney formats a dollar value with thousands separators.
func FormatMoney(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	whole := int64(value)
	frac := math.Round((value - float64(whole)) * 100)
	if frac >= 100 {
		whole++
		frac = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), int64(frac))
}

// FormatSignedMoney formats a dollar value with an explicit sign prefix.
func FormatSignedMoney(value float64) string {
	if value > 0 {
		return "+" + FormatMoney(value)
	}
	return FormatMoney(value)
}

// FormatPrice formats a share price without grouping.
func FormatPrice(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// FormatAmount renders a bounded figure as money and an unbounded one as text.
func FormatAmount(a models.Amount) string {
	if a.IsUnbounded() {
		return "unbounded"
	}
	return FormatMoney(a.Value())
}

// FormatSignedAmount is FormatAmount with a sign prefix on bounded gains.
func FormatSignedAmount(a models.Amount) string {
	if !a.IsUnbounded() && a.Value() > 0 {
		return "+" + FormatAmount(a)
	}
	return FormatAmount(a)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
