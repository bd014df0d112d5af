package advisor

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return DecodeCatalog(bytes.NewReader(defaultCatalogYAML))
})

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads the catalog file at path. An empty path returns the
// embedded default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return defaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

// catalogFile is the on-disk form of a Catalog. It is also the JSON form
// used by Query.
type catalogFile struct {
	Currencies []currencyEntry         `yaml:"currencies" json:"currencies"`
	Coins      map[string]coinEntry    `yaml:"coins" json:"coins"`
	Pools      map[string][]poolEntry  `yaml:"pools" json:"pools"`
	Profiles   map[string]profileEntry `yaml:"profiles" json:"profiles"`
}

type currencyEntry struct {
	Code   string  `yaml:"code" json:"code"`
	Rate   float64 `yaml:"rate" json:"rate"`
	Prefix string  `yaml:"prefix" json:"prefix"`
}

type coinEntry struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Logo        string `yaml:"logo,omitempty" json:"logo,omitempty"`
	Sector      string `yaml:"sector,omitempty" json:"sector"`
}

type poolEntry struct {
	Symbol string  `yaml:"symbol" json:"symbol"`
	Weight float64 `yaml:"weight" json:"weight"`
}

type profileEntry struct {
	Volatility      string `yaml:"volatility" json:"volatility"`
	Diversification string `yaml:"diversification" json:"diversification"`
	Suitability     string `yaml:"suitability" json:"suitability"`
}

// DecodeCatalog parses and validates a YAML catalog.
//
// All validation failures are reported at once, wrapped in ErrInvalidCatalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return file.catalog()
}

// EncodeCatalog writes c in the YAML catalog format.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.file()); err != nil {
		return err
	}
	return enc.Close()
}

func (file catalogFile) catalog() (*Catalog, error) {
	var errs []error
	c := &Catalog{
		coins:    make(map[string]CoinInfo),
		pools:    make(map[RiskTier]CoinPool),
		profiles: make(map[RiskTier]RiskProfile),
	}

	// currencies
	if len(file.Currencies) == 0 {
		c.currencies = DefaultRates()
	}
	seenCodes := make(map[string]bool)
	for _, e := range file.Currencies {
		switch {
		case money.GetCurrency(e.Code) == nil:
			errs = append(errs, fmt.Errorf("currency %q is not an ISO 4217 code", e.Code))
			continue
		case seenCodes[e.Code]:
			errs = append(errs, fmt.Errorf("currency %q is defined twice", e.Code))
			continue
		case e.Rate <= 0:
			errs = append(errs, fmt.Errorf("currency %q has a non positive rate %v", e.Code, e.Rate))
			continue
		case e.Code == BaseCurrency && e.Rate != 1:
			errs = append(errs, fmt.Errorf("currency %q must have rate 1, got %v", e.Code, e.Rate))
			continue
		}
		seenCodes[e.Code] = true
		c.currencies = append(c.currencies, CurrencyRate{Code: e.Code, Rate: decimal.NewFromFloat(e.Rate), Prefix: e.Prefix})
	}
	if len(file.Currencies) > 0 && !seenCodes[BaseCurrency] {
		errs = append(errs, fmt.Errorf("currency table must define %s", BaseCurrency))
	}

	// coins
	for symbol, e := range file.Coins {
		if symbol == "" {
			errs = append(errs, errors.New("coin with an empty symbol"))
			continue
		}
		sector, err := ParseSector(e.Sector)
		if err != nil {
			errs = append(errs, fmt.Errorf("coin %q: %w", symbol, err))
			continue
		}
		name := e.Name
		if name == "" {
			name = symbol
		}
		c.coins[symbol] = CoinInfo{Symbol: symbol, Name: name, Description: e.Description, Logo: e.Logo, Sector: sector}
	}

	// pools
	for name, entries := range file.Pools {
		tier, err := ParseRiskTier(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("pool: %w", err))
			continue
		}
		if _, dup := c.pools[tier]; dup {
			errs = append(errs, fmt.Errorf("pool %s is defined twice", tier))
			continue
		}
		pool := make(CoinPool, 0, len(entries))
		seen := make(map[string]bool)
		for _, e := range entries {
			switch {
			case e.Symbol == "":
				errs = append(errs, fmt.Errorf("pool %s: entry with an empty symbol", tier))
			case seen[e.Symbol]:
				errs = append(errs, fmt.Errorf("pool %s: symbol %q is listed twice", tier, e.Symbol))
			case e.Weight <= 0:
				errs = append(errs, fmt.Errorf("pool %s: symbol %q has a non positive weight %v", tier, e.Symbol, e.Weight))
			default:
				seen[e.Symbol] = true
				pool = append(pool, PoolEntry{Symbol: e.Symbol, Weight: decimal.NewFromFloat(e.Weight)})
			}
		}
		c.pools[tier] = pool
	}

	// profiles
	for name, e := range file.Profiles {
		tier, err := ParseRiskTier(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("profile: %w", err))
			continue
		}
		if _, dup := c.profiles[tier]; dup {
			errs = append(errs, fmt.Errorf("profile %s is defined twice", tier))
			continue
		}
		c.profiles[tier] = RiskProfile{Tier: tier, Volatility: e.Volatility, Diversification: e.Diversification, Suitability: e.Suitability}
	}

	for _, tier := range RiskTiers {
		if _, ok := c.pools[tier]; !ok {
			errs = append(errs, fmt.Errorf("missing pool for %s", tier))
		}
		if _, ok := c.profiles[tier]; !ok {
			errs = append(errs, fmt.Errorf("missing profile for %s", tier))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return c, nil
}

// file returns the on-disk form of c.
func (c *Catalog) file() catalogFile {
	file := catalogFile{
		Coins:    make(map[string]coinEntry, len(c.coins)),
		Pools:    make(map[string][]poolEntry, len(c.pools)),
		Profiles: make(map[string]profileEntry, len(c.profiles)),
	}
	for _, r := range c.currencies {
		file.Currencies = append(file.Currencies, currencyEntry{Code: r.Code, Rate: r.Rate.InexactFloat64(), Prefix: r.Prefix})
	}
	for symbol, info := range c.coins {
		file.Coins[symbol] = coinEntry{Name: info.Name, Description: info.Description, Logo: info.Logo, Sector: info.Sector.String()}
	}
	for tier, pool := range c.pools {
		entries := make([]poolEntry, len(pool))
		for i, e := range pool {
			entries[i] = poolEntry{Symbol: e.Symbol, Weight: e.Weight.InexactFloat64()}
		}
		file.Pools[tier.String()] = entries
	}
	for tier, p := range c.profiles {
		file.Profiles[tier.String()] = profileEntry{Volatility: p.Volatility, Diversification: p.Diversification, Suitability: p.Suitability}
	}
	return file
}
