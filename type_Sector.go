package advisor

import "fmt"

// Sector groups coins for the second clause of an insight.
type Sector int

const (
	// Emerging is the default sector for any coin not classified otherwise.
	Emerging Sector = iota
	StoreOfValue
	Growth
)

func (s Sector) String() string {
	switch s {
	case StoreOfValue:
		return "store-of-value"
	case Growth:
		return "growth"
	default:
		return "emerging"
	}
}

// ParseSector parses a sector name as written in the catalog. An empty name is Emerging.
func ParseSector(s string) (Sector, error) {
	switch s {
	case "", "emerging":
		return Emerging, nil
	case "store-of-value":
		return StoreOfValue, nil
	case "growth":
		return Growth, nil
	default:
		return 0, fmt.Errorf("unknown sector: %q", s)
	}
}
