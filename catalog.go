package advisor

import (
	"fmt"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// CoinInfo is the display metadata of a coin.
type CoinInfo struct {
	Symbol      string
	Name        string
	Description string
	Logo        string
	Sector      Sector
}

// PoolEntry is a coin eligible for a tier, with its base weight.
type PoolEntry struct {
	Symbol string
	Weight decimal.Decimal
}

// CoinPool is the ordered list of coins eligible for a tier. Weights need not
// sum to 1.
type CoinPool []PoolEntry

// Symbols returns the pool symbols in pool order.
func (p CoinPool) Symbols() []string {
	symbols := make([]string, len(p))
	for i, e := range p {
		symbols[i] = e.Symbol
	}
	return symbols
}

// Weight returns the base weight of symbol and whether it belongs to the pool.
func (p CoinPool) Weight(symbol string) (decimal.Decimal, bool) {
	for _, e := range p {
		if e.Symbol == symbol {
			return e.Weight, true
		}
	}
	return decimal.Zero, false
}

// Contains reports whether symbol belongs to the pool.
func (p CoinPool) Contains(symbol string) bool {
	_, ok := p.Weight(symbol)
	return ok
}

// RiskProfile is the static risk summary of a tier.
type RiskProfile struct {
	Tier            RiskTier
	Volatility      string
	Diversification string
	Suitability     string
}

// Catalog holds the static reference data: coin metadata, pools, risk
// profiles and the currency table. A Catalog is immutable once decoded.
type Catalog struct {
	coins      map[string]CoinInfo
	pools      map[RiskTier]CoinPool
	profiles   map[RiskTier]RiskProfile
	currencies []CurrencyRate
}

// Coin returns the metadata of symbol.
//
// Unknown symbols are not an error: the name falls back to the symbol itself,
// description and logo are empty, and the sector is Emerging.
func (c *Catalog) Coin(symbol string) CoinInfo {
	if info, ok := c.coins[symbol]; ok {
		return info
	}
	return CoinInfo{Symbol: symbol, Name: symbol, Sector: Emerging}
}

// Known reports whether symbol has metadata in the catalog.
func (c *Catalog) Known(symbol string) bool {
	_, ok := c.coins[symbol]
	return ok
}

// Sector returns the sector of symbol, Emerging for unknown symbols.
func (c *Catalog) Sector(symbol string) Sector { return c.Coin(symbol).Sector }

// Symbols returns all the symbols with metadata, sorted.
func (c *Catalog) Symbols() []string {
	symbols := make([]string, 0, len(c.coins))
	for s := range c.coins {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Pool returns a copy of the pool for tier.
func (c *Catalog) Pool(tier RiskTier) (CoinPool, error) {
	pool, ok := c.pools[tier]
	if !ok {
		return nil, fmt.Errorf("%w: no pool for %s", ErrUnknownRiskTier, tier)
	}
	return slices.Clone(pool), nil
}

// Profile returns the risk profile for tier.
func (c *Catalog) Profile(tier RiskTier) RiskProfile {
	if p, ok := c.profiles[tier]; ok {
		return p
	}
	return RiskProfile{Tier: tier}
}

// Converter returns a currency converter for the catalog's currency table.
func (c *Catalog) Converter() *Converter {
	return NewConverter(c.currencies...)
}
