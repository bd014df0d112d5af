package advisor

import "github.com/shopspring/decimal"

// WeightTier classifies the share of a coin in an allocation.
type WeightTier int

const (
	SmallWeight    WeightTier = iota // below 15%
	ModerateWeight                   // from 15% to 30%
	HighWeight                       // 30% and above
)

var (
	highWeightThreshold     = decimal.RequireFromString("0.30")
	moderateWeightThreshold = decimal.RequireFromString("0.15")
)

func (w WeightTier) String() string {
	switch w {
	case HighWeight:
		return "high"
	case ModerateWeight:
		return "moderate"
	default:
		return "small"
	}
}

// ClassifyWeight classifies amount/total. A zero total is a small weight.
func ClassifyWeight(amount, total decimal.Decimal) WeightTier {
	if total.IsZero() {
		return SmallWeight
	}
	weight := amount.Div(total)
	switch {
	case weight.GreaterThanOrEqual(highWeightThreshold):
		return HighWeight
	case weight.GreaterThanOrEqual(moderateWeightThreshold):
		return ModerateWeight
	default:
		return SmallWeight
	}
}

// InsightText returns the commentary for a weight tier and a sector.
func InsightText(w WeightTier, s Sector) string {
	var text string
	switch w {
	case HighWeight:
		text = "This coin has a **high weight**, reflecting strong confidence in its long-term stability or market dominance. "
	case ModerateWeight:
		text = "This coin has a **moderate allocation**, indicating it's considered a core part of this risk profile. "
	default:
		text = "This coin is a **smaller allocation**, possibly due to its niche use case or volatility. "
	}

	switch s {
	case StoreOfValue:
		text += "It's a well-established coin with high market cap, suitable for preserving value."
	case Growth:
		text += "This coin supports DeFi, scalability, or cross-chain features, aligned with growth sectors."
	default:
		text += "It's a newer or emerging project, potentially high growth, but comes with higher risk."
	}
	return text
}

// Insight returns the commentary for symbol holding amount out of total.
func (c *Catalog) Insight(symbol string, amount, total decimal.Decimal) string {
	return InsightText(ClassifyWeight(amount, total), c.Sector(symbol))
}
