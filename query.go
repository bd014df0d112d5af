package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the catalog's JSON form,
// e.g. "$.coins.BTC.name" or "$.pools.Low[*].symbol".
func (c *Catalog) Query(expr string) (any, error) {
	doc, err := c.JSON()
	if err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return val, nil
}

// JSON returns the catalog as generic JSON values (maps, slices, strings and
// float64).
func (c *Catalog) JSON() (any, error) {
	raw, err := json.Marshal(c.file())
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
