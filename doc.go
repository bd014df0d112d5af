// Package advisor suggests a cryptocurrency allocation for a risk tier and a
// budget.
//
// The core functionalities include:
//   - Catalog: static reference data (coin metadata, one coin pool per risk
//     tier, risk summaries and the currency table) loaded from YAML, with an
//     embedded default.
//   - Allocation Engine: draws a subset of the tier's pool, renormalizes the
//     subset's base weights and splits the budget accordingly.
//   - Insights: fixed commentary derived from a coin's weight and sector.
//   - Sessions and Reports: the per-user request/response context and the
//     presentation model rendered by the `renderer` package.
//
// This package serves as the foundational logic for the `cra` command-line
// tool and its web form.
package advisor
