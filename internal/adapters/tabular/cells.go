package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CleanAmount parses a money cell such as "₩1,234,000". Currency signs,
// thousands separators and spaces are ignored; an empty cell is zero.
func CleanAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("₩", "", "￦", "", ",", "", " ", "", "원", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

// ParseDate parses a date cell written either as ISO "2024-01-15" or in the
// Korean locale form "2024. 1. 15.".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	parts := strings.Fields(strings.ReplaceAll(s, ".", " "))
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if month < 1 || month > 12 || t.Day() != day || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
