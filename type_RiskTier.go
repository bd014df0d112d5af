package advisor

import (
	"fmt"
	"strings"
)

// RiskTier selects a coin pool and a risk summary.
type RiskTier int

const (
	Low RiskTier = iota
	Medium
	High
)

// RiskTiers lists every tier, in increasing order of risk.
var RiskTiers = []RiskTier{Low, Medium, High}

func (r RiskTier) String() string {
	switch r {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "unknown"
	}
}

// ParseRiskTier parses a tier name, ignoring case.
func ParseRiskTier(s string) (RiskTier, error) {
	for _, r := range RiskTiers {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRiskTier, s)
}

func (r RiskTier) MarshalText() ([]byte, error) {
	if r < Low || r > High {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRiskTier, int(r))
	}
	return []byte(r.String()), nil
}

func (r *RiskTier) UnmarshalText(text []byte) error {
	v, err := ParseRiskTier(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
