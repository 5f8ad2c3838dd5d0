package accounting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soyjefu/theprepared-PFM/internal/apperrors"
	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentDelimiter separates the item name from the installment count.
const InstallmentDelimiter = "//"

// MaxInstallments caps the split at thirty years of monthly parts.
const MaxInstallments = 360

// Installment is one scheduled part of an installment purchase.
type Installment struct {
	Date   time.Time
	Item   string
	Memo   string
	Amount decimal.Decimal
}

// IsInstallment reports whether the item label requests an installment split.
func IsInstallment(item string) bool {
	return strings.Contains(item, InstallmentDelimiter)
}

// ParseInstallment splits "<name>//<N>" into its name and a positive count.
func ParseInstallment(item string) (string, int, error) {
	parts := strings.Split(item, InstallmentDelimiter)
	if len(parts) != 2 {
		return "", 0, apperrors.NewFieldError("item", "installment format must be '<item>//<months>'")
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, apperrors.NewFieldError("item", "installment item name is empty")
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || count <= 0 {
		return "", 0, apperrors.NewFieldError("item", "installment months must be a positive integer, got %q", parts[1])
	}
	if count > MaxInstallments {
		return "", 0, apperrors.NewFieldError("item", "installment months must be at most %d, got %d", MaxInstallments, count)
	}
	return name, count, nil
}

// SplitInstallments schedules count monthly parts starting at start. Every
// part carries round(total/count) with banker's rounding; the remainder is
// not redistributed, so the parts may not add up to total exactly.
func SplitInstallments(name string, total decimal.Decimal, count int, start time.Time) []Installment {
	per := total.Div(decimal.NewFromInt(int64(count))).RoundBank(0)
	parts := make([]Installment, count)
	for i := 0; i < count; i++ {
		parts[i] = Installment{
			Date:   domain.AddMonths(start, i),
			Item:   name,
			Memo:   fmt.Sprintf("%s (%d/%d회차)", name, i+1, count),
			Amount: per,
		}
	}
	return parts
}
