package advisor

import "errors"

var (
	// ErrUnknownRiskTier is returned for a tier name or a tier without a pool.
	ErrUnknownRiskTier = errors.New("unknown risk tier")
	// ErrInsufficientPoolSize is returned when a pool cannot provide the requested number of coins.
	ErrInsufficientPoolSize = errors.New("insufficient pool size")
	// ErrInvalidBudget is returned by PortfolioRequest.Validate.
	ErrInvalidBudget = errors.New("invalid budget")
	// ErrUnknownCurrency is returned for a currency missing from the conversion table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidCatalog wraps every catalog validation failure.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
