package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a share of a whole, 40 meaning 40%.
type Percent float64

// PercentOf returns the share of part in whole, 0 when whole is zero.
func PercentOf(part, whole decimal.Decimal) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.Div(whole).Shift(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p)
}
