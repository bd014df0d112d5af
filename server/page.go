package server

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// pageData is the view model of page.html.
type pageData struct {
	Tiers      []advisor.RiskTier
	Tier       advisor.RiskTier
	MinBudget  string
	BudgetStep string
	Budget     string
	Currencies []string
	Currency   string
	Error      string
	Pie        template.HTML
	Report     template.HTML
}

// renderPage writes the form and the report of v, with an optional error
// message.
func (s *Server) renderPage(w io.Writer, v visitor, message string) error {
	report, err := advisor.NewReport(s.engine.Catalog(), s.conv, v.session, v.currency)
	if err != nil {
		return err
	}
	body, err := renderer.HTML(renderer.RenderReport(report, renderer.ReportRenderOptions{SkipChart: true}))
	if err != nil {
		return err
	}
	return pageTemplate.Execute(w, pageData{
		Tiers:      advisor.RiskTiers,
		Tier:       v.session.Request.Tier,
		MinBudget:  advisor.MinBudget.String(),
		BudgetStep: advisor.BudgetStep.String(),
		Budget:     v.session.Request.Budget.String(),
		Currencies: s.conv.Codes(),
		Currency:   v.currency,
		Error:      message,
		Pie:        template.HTML(renderer.PieSVG(report.Chart, 240)),
		Report:     template.HTML(body),
	})
}
