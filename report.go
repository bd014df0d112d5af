package advisor

import "github.com/shopspring/decimal"

// ReportRow is a coin of a report, ready for display.
type ReportRow struct {
	Symbol      string
	Name        string
	Description string
	Logo        string
	Amount      Money   // in USD
	Display     string  // amount converted and formatted in the report currency
	Weight      Percent // share of the budget
	Insight     string
}

// ChartSlice is a pie chart slice: the label is the symbol, the value the
// USD amount.
type ChartSlice struct {
	Label   string
	Value   decimal.Decimal
	Percent Percent
}

// Report is the presentation model of a session.
type Report struct {
	Tier          RiskTier
	Budget        Money
	BudgetDisplay string
	Currency      string
	Rows          []ReportRow  // by decreasing amount
	Chart         []ChartSlice // in allocation order
	Profile       RiskProfile
}

// NewReport builds the report of s, with amounts displayed in currency.
// A session without allocation gives a report without rows.
func NewReport(c *Catalog, conv *Converter, s *Session, currency string) (*Report, error) {
	budget := s.Request.Budget
	budgetDisplay, err := conv.Format(budget, currency)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Tier:          s.Request.Tier,
		Budget:        M(budget, BaseCurrency),
		BudgetDisplay: budgetDisplay,
		Currency:      currency,
		Profile:       c.Profile(s.Request.Tier),
	}

	for _, p := range s.Allocation.Sorted() {
		info := c.Coin(p.Symbol)
		display, err := conv.Format(p.Amount.Decimal(), currency)
		if err != nil {
			return nil, err
		}
		r.Rows = append(r.Rows, ReportRow{
			Symbol:      p.Symbol,
			Name:        info.Name,
			Description: info.Description,
			Logo:        info.Logo,
			Amount:      p.Amount,
			Display:     display,
			Weight:      PercentOf(p.Amount.Decimal(), budget),
			Insight:     c.Insight(p.Symbol, p.Amount.Decimal(), budget),
		})
	}

	total := s.Allocation.Total().Decimal()
	for _, p := range s.Allocation {
		r.Chart = append(r.Chart, ChartSlice{
			Label:   p.Symbol,
			Value:   p.Amount.Decimal(),
			Percent: PercentOf(p.Amount.Decimal(), total),
		})
	}
	return r, nil
}

// IsEmpty reports whether the report has no allocation to show.
func (r *Report) IsEmpty() bool { return len(r.Rows) == 0 }

func (r ReportRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("name", r.Name)
	w.Optional("description", r.Description)
	w.Optional("logo", r.Logo)
	w.Append("amount", r.Amount)
	w.Append("display", r.Display)
	w.Percent("weight", r.Weight)
	w.Append("insight", r.Insight)
	return w.MarshalJSON()
}

func (s ChartSlice) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", s.Label)
	w.Fixed("value", s.Value, 2)
	w.Percent("percent", s.Percent)
	return w.MarshalJSON()
}

func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tier", r.Tier)
	w.Append("budget", r.Budget)
	w.Append("budgetDisplay", r.BudgetDisplay)
	w.Append("currency", r.Currency)
	rows := r.Rows
	if rows == nil {
		rows = []ReportRow{}
	}
	w.Append("rows", rows)
	chart := r.Chart
	if chart == nil {
		chart = []ChartSlice{}
	}
	w.Append("chart", chart)
	w.Append("profile", map[string]string{
		"volatility":      r.Profile.Volatility,
		"diversification": r.Profile.Diversification,
		"suitability":     r.Profile.Suitability,
	})
	return w.MarshalJSON()
}
