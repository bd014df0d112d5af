package advisor

import (
	"slices"
)

// Position is a coin of an allocation with its USD amount.
type Position struct {
	Symbol string
	Amount Money
}

func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("amount", p.Amount)
	return w.MarshalJSON()
}

// Allocation is the ordered list of positions suggested for a budget. The
// amounts sum to the budget.
type Allocation []Position

// Total returns the sum of all amounts.
func (a Allocation) Total() Money {
	total := M(0, BaseCurrency)
	for _, p := range a {
		total = total.Add(p.Amount)
	}
	return total
}

// Symbols returns the symbols in allocation order.
func (a Allocation) Symbols() []string {
	symbols := make([]string, len(a))
	for i, p := range a {
		symbols[i] = p.Symbol
	}
	return symbols
}

// Sorted returns a copy sorted by decreasing amount. Ties keep their
// allocation order.
func (a Allocation) Sorted() Allocation {
	sorted := slices.Clone(a)
	slices.SortStableFunc(sorted, func(x, y Position) int {
		return y.Amount.Decimal().Cmp(x.Amount.Decimal())
	})
	return sorted
}
