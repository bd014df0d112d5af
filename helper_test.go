package advisor

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for test to create decimals from literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// scriptedRand returns its values in order, then zeros. It records the bound
// of every draw.
type scriptedRand struct {
	values []int
	bounds []int
}

func (r *scriptedRand) IntN(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 0 || v >= n {
		panic("scripted value out of range")
	}
	return v
}

// decodeCatalog decodes a test catalog or fails the test.
func decodeCatalog(t *testing.T, src string) *Catalog {
	t.Helper()
	c, err := DecodeCatalog(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	return c
}

// smallPoolsCatalog has a Low pool of 2 coins, a Medium pool of 3 coins and
// an empty High pool.
const smallPoolsCatalog = `
coins:
  AAA: {name: Alpha}
pools:
  Low:
    - {symbol: AAA, weight: 3}
    - {symbol: BBB, weight: 1}
  Medium:
    - {symbol: AAA, weight: 1}
    - {symbol: BBB, weight: 1}
    - {symbol: CCC, weight: 2}
  High: []
profiles:
  Low: {volatility: v, diversification: d, suitability: s}
  Medium: {volatility: v, diversification: d, suitability: s}
  High: {volatility: v, diversification: d, suitability: s}
`
