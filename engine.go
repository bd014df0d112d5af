package advisor

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	// minSelection is the usual number of coins in a suggestion.
	minSelection = 3
	// maxSelection is the largest number of coins in a suggestion.
	maxSelection = 4
)

// Engine suggests allocations from a catalog's pools.
//
// An Engine is safe for concurrent use; draws from its random source are
// serialized.
type Engine struct {
	catalog *Catalog

	mu   sync.Mutex
	rand Rand
}

// NewEngine returns an engine drawing from r. A nil r uses the process-wide
// random source.
func NewEngine(c *Catalog, r Rand) *Engine {
	if r == nil {
		r = globalRand{}
	}
	return &Engine{catalog: c, rand: r}
}

// Catalog returns the catalog the engine draws from.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// SuggestPortfolio draws an allocation of budget among the coins of tier.
//
// The number of coins is drawn with equal odds between 3 and min(4, n), n
// being the pool size, and clamped to n for pools smaller than 3. The coins
// are drawn uniformly without replacement, then the budget is split in
// proportion to their base weights, renormalized over the drawn subset only.
func (e *Engine) SuggestPortfolio(tier RiskTier, budget decimal.Decimal) (Allocation, error) {
	pool, err := e.catalog.Pool(tier)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s pool is empty", ErrInsufficientPoolSize, tier)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	size := selectionSize(len(pool), e.rand)
	return allocate(pool, budget, size, e.rand)
}

// SuggestPortfolioN is SuggestPortfolio with an explicit number of coins.
// It fails with ErrInsufficientPoolSize when size is not in [1, n].
func (e *Engine) SuggestPortfolioN(tier RiskTier, budget decimal.Decimal, size int) (Allocation, error) {
	pool, err := e.catalog.Pool(tier)
	if err != nil {
		return nil, err
	}
	if size < 1 || size > len(pool) {
		return nil, fmt.Errorf("%w: %s pool has %d coins, %d requested", ErrInsufficientPoolSize, tier, len(pool), size)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return allocate(pool, budget, size, e.rand)
}

// selectionSize draws the number of coins for a pool of n > 0 coins.
func selectionSize(n int, r Rand) int {
	candidates := [2]int{minSelection, min(maxSelection, n)}
	return min(candidates[r.IntN(len(candidates))], n)
}

// sample draws size distinct indices in [0, n) using a partial Fisher-Yates
// shuffle.
func sample(n, size int, r Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < size; i++ {
		j := i + r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:size]
}

func allocate(pool CoinPool, budget decimal.Decimal, size int, r Rand) (Allocation, error) {
	if !budget.IsPositive() {
		return nil, fmt.Errorf("%w: %s is not positive", ErrInvalidBudget, budget)
	}

	selected := sample(len(pool), size, r)

	sum := decimal.Zero
	for _, i := range selected {
		sum = sum.Add(pool[i].Weight)
	}

	allocation := make(Allocation, 0, size)
	for _, i := range selected {
		amount := budget.Mul(pool[i].Weight).Div(sum)
		allocation = append(allocation, Position{Symbol: pool[i].Symbol, Amount: M(amount, BaseCurrency)})
	}
	return allocation, nil
}
