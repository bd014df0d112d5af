package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/advisor"
)

// ReportRenderOptions holds configuration for rendering a portfolio report.
type ReportRenderOptions struct {
	SkipInsights bool // Do not render the per coin insights.
	SkipChart    bool // Do not render the distribution table.
}

// RenderReport renders the Report to a markdown string.
func RenderReport(r *advisor.Report, opts ReportRenderOptions) string {
	partials := map[string]string{
		"report_title":     "report_title.md",
		"report_positions": "report_positions.md",
		"report_insights":  "report_insights.md",
		"report_chart":     "report_chart.md",
		"report_profile":   "report_profile.md",
	}
	if opts.SkipInsights {
		partials["report_insights"] = "report_skipped.md"
	}
	if opts.SkipChart {
		partials["report_chart"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// catalogView is the data of the catalog template.
type catalogView struct {
	Currencies []string
	Coins      []advisor.CoinInfo
	Pools      []poolView
}

type poolView struct {
	Tier    advisor.RiskTier
	Entries advisor.CoinPool
	Profile advisor.RiskProfile
}

// RenderCatalog renders the coins and the pools of a catalog to a markdown
// string.
func RenderCatalog(c *advisor.Catalog) string {
	v := catalogView{Currencies: c.Converter().Codes()}
	for _, symbol := range c.Symbols() {
		v.Coins = append(v.Coins, c.Coin(symbol))
	}
	for _, tier := range advisor.RiskTiers {
		pool, err := c.Pool(tier)
		if err != nil {
			continue
		}
		v.Pools = append(v.Pools, poolView{Tier: tier, Entries: pool, Profile: c.Profile(tier)})
	}
	partials := map[string]string{
		"catalog_coins": "catalog_coins.md",
		"catalog_pools": "catalog_pools.md",
	}
	return renderTemplate("catalog", "catalog.md", partials, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
