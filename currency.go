package advisor

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency allocations are computed in.
const BaseCurrency = "USD"

// displayFraction is the number of decimals shown for every display currency.
const displayFraction = 2

// CurrencyRate is a row of the display conversion table.
type CurrencyRate struct {
	Code   string
	Rate   decimal.Decimal // units of Code for one USD
	Prefix string          // printed before the amount, e.g. "$" or "PKR "
}

// DefaultRates is the conversion table used when a catalog does not define one.
func DefaultRates() []CurrencyRate {
	return []CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), Prefix: "$"},
		{Code: "PKR", Rate: decimal.NewFromInt(290), Prefix: "PKR "},
	}
}

// Converter converts USD amounts into display currencies using a fixed
// table. It never fetches live rates.
type Converter struct {
	rates map[string]CurrencyRate
	codes []string
}

// NewConverter returns a converter for rates. The USD identity row is added
// when missing.
func NewConverter(rates ...CurrencyRate) *Converter {
	c := &Converter{rates: make(map[string]CurrencyRate)}
	if len(rates) == 0 {
		rates = DefaultRates()
	}
	for _, r := range rates {
		if _, exists := c.rates[r.Code]; !exists {
			c.codes = append(c.codes, r.Code)
		}
		c.rates[r.Code] = r
	}
	if _, ok := c.rates[BaseCurrency]; !ok {
		c.rates[BaseCurrency] = CurrencyRate{Code: BaseCurrency, Rate: decimal.NewFromInt(1), Prefix: "$"}
		c.codes = append([]string{BaseCurrency}, c.codes...)
	}
	return c
}

// Codes returns the supported currency codes in table order.
func (c *Converter) Codes() []string { return append([]string(nil), c.codes...) }

// Supports reports whether target is in the conversion table.
func (c *Converter) Supports(target string) bool {
	_, ok := c.rates[target]
	return ok
}

// Convert converts a USD amount into target and returns the converted amount
// with the display prefix of target.
func (c *Converter) Convert(amount decimal.Decimal, target string) (decimal.Decimal, string, error) {
	r, ok := c.rates[target]
	if !ok {
		return decimal.Zero, "", fmt.Errorf("%w: %q", ErrUnknownCurrency, target)
	}
	return amount.Mul(r.Rate), r.Prefix, nil
}

// Format converts a USD amount into target and formats it with the prefix,
// thousands separators and two decimals, e.g. "PKR 29,000.00".
func (c *Converter) Format(amount decimal.Decimal, target string) (string, error) {
	converted, prefix, err := c.Convert(amount, target)
	if err != nil {
		return "", err
	}
	f := money.NewFormatter(displayFraction, ".", ",", prefix, "$1")
	minor := converted.Shift(displayFraction).Round(0).IntPart()
	return f.Format(minor), nil
}
