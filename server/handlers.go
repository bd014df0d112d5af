package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/etnz/advisor"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleIndex shows the form and the report of the session. The currency
// query parameter changes the display currency of the session.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	v := s.sessions.load(id, s.currency)
	if err := s.setCurrency(&v, r.URL.Query().Get("currency")); err != nil {
		s.sessions.save(id, v)
		s.writePage(w, http.StatusBadRequest, v, err.Error())
		return
	}
	s.sessions.save(id, v)
	s.writePage(w, http.StatusOK, v, "")
}

// handleCurrency changes the display currency of the session and redirects to
// the report. The allocation is left unchanged.
func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	v := s.sessions.load(id, s.currency)
	if err := r.ParseForm(); err != nil {
		s.writePage(w, http.StatusBadRequest, v, err.Error())
		return
	}
	if err := s.setCurrency(&v, r.PostForm.Get("currency")); err != nil {
		s.sessions.save(id, v)
		s.writePage(w, http.StatusBadRequest, v, err.Error())
		return
	}
	s.log.Debug().Str("session", id).Str("currency", v.currency).Msg("changed currency")
	s.sessions.save(id, v)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// setCurrency sets the display currency of v. An empty code keeps the current
// one.
func (s *Server) setCurrency(v *visitor, code string) error {
	if code == "" {
		return nil
	}
	if !s.conv.Supports(code) {
		return fmt.Errorf("%w: %q", advisor.ErrUnknownCurrency, code)
	}
	v.currency = code
	return nil
}

// handleSuggest submits the form and redirects to the report. Invalid input
// re-renders the form with the error and a 400 status.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	v := s.sessions.load(id, s.currency)

	if err := s.suggest(&v, r); err != nil {
		s.log.Debug().Err(err).Str("session", id).Msg("rejected request")
		s.sessions.save(id, v)
		s.writePage(w, http.StatusBadRequest, v, err.Error())
		return
	}
	s.log.Debug().
		Str("session", id).
		Stringer("tier", v.session.Request.Tier).
		Strs("coins", v.session.Allocation.Symbols()).
		Msg("suggested portfolio")
	s.sessions.save(id, v)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) suggest(v *visitor, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	tier, err := advisor.ParseRiskTier(r.PostForm.Get("risk"))
	if err != nil {
		return err
	}
	budget, err := advisor.ParseBudget(r.PostForm.Get("budget"))
	if err != nil {
		return err
	}
	next := *v
	if err := s.setCurrency(&next, r.PostForm.Get("currency")); err != nil {
		return err
	}
	if err := next.session.Submit(s.engine, advisor.PortfolioRequest{Tier: tier, Budget: budget}); err != nil {
		return err
	}
	*v = next
	return nil
}

// handleReset clears the session and redirects to the form.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := sessionID(w, r)
	v := s.sessions.load(id, s.currency)
	v.session.Reset()
	s.sessions.save(id, v)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handlePortfolio returns the report of the session as JSON. The currency
// query parameter overrides the session currency.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	report, ok := s.report(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleChart returns the pie chart series of the session.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	report, ok := s.report(w, r)
	if !ok {
		return
	}
	chart := report.Chart
	if chart == nil {
		chart = []advisor.ChartSlice{}
	}
	s.writeJSON(w, http.StatusOK, chart)
}

// report builds the report of the session of r, writing the error response
// when it cannot.
func (s *Server) report(w http.ResponseWriter, r *http.Request) (*advisor.Report, bool) {
	id := sessionID(w, r)
	v := s.sessions.load(id, s.currency)
	s.sessions.save(id, v)

	currency := v.currency
	if c := r.URL.Query().Get("currency"); c != "" {
		currency = c
	}
	report, err := advisor.NewReport(s.engine.Catalog(), s.conv, v.session, currency)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return report, true
}

// writePage writes the page with status, or a 500 if it cannot be rendered.
func (s *Server) writePage(w http.ResponseWriter, status int, v visitor, message string) {
	var buf bytes.Buffer
	if err := s.renderPage(&buf, v, message); err != nil {
		s.log.Error().Err(err).Msg("Failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
