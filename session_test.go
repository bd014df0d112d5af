package advisor

import (
	"errors"
	"testing"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.Request.Tier != Low || !s.Request.Budget.Equal(dec("100")) {
		t.Errorf("NewSession().Request = %v %s, want Low 100", s.Request.Tier, s.Request.Budget)
	}
	if len(s.Allocation) != 0 {
		t.Errorf("NewSession().Allocation = %v, want empty", s.Allocation.Symbols())
	}
}

func TestSessionSubmitAndReset(t *testing.T) {
	engine := NewEngine(DefaultCatalog(), NewSeededRand(11))
	s := NewSession()

	req := PortfolioRequest{Tier: High, Budget: dec("500")}
	if err := s.Submit(engine, req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !sameRequest(s.Request, req) {
		t.Errorf("Submit() request = %+v, want %+v", s.Request, req)
	}
	if len(s.Allocation) < 3 {
		t.Errorf("Submit() allocation = %v, want at least 3 coins", s.Allocation.Symbols())
	}

	// A new submission replaces the allocation, nothing is merged.
	if err := s.SubmitN(engine, PortfolioRequest{Tier: Low, Budget: dec("100")}, 4); err != nil {
		t.Fatalf("SubmitN() error = %v", err)
	}
	if len(s.Allocation) != 4 {
		t.Errorf("SubmitN() allocation = %v, want the 4 Low coins", s.Allocation.Symbols())
	}

	s.Reset()
	if !sameRequest(s.Request, DefaultRequest()) {
		t.Errorf("Reset() request = %+v, want %+v", s.Request, DefaultRequest())
	}
	if s.Allocation != nil {
		t.Errorf("Reset() allocation = %v, want empty", s.Allocation.Symbols())
	}
}

func TestSessionSubmitInvalidKeepsState(t *testing.T) {
	engine := NewEngine(DefaultCatalog(), NewSeededRand(5))
	s := NewSession()
	if err := s.Submit(engine, PortfolioRequest{Tier: Medium, Budget: dec("200")}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	before := s.Clone()

	err := s.Submit(engine, PortfolioRequest{Tier: High, Budget: dec("120")})
	if !errors.Is(err, ErrInvalidBudget) {
		t.Fatalf("Submit(120) error = %v, want %v", err, ErrInvalidBudget)
	}
	if !sameRequest(s.Request, before.Request) || len(s.Allocation) != len(before.Allocation) {
		t.Errorf("a rejected Submit() changed the session")
	}
}

func TestSessionClone(t *testing.T) {
	s := &Session{Request: DefaultRequest(), Allocation: Allocation{{Symbol: "BTC", Amount: USD(100)}}}
	c := s.Clone()
	c.Allocation[0].Symbol = "ETH"
	if s.Allocation[0].Symbol != "BTC" {
		t.Errorf("Clone() shares the allocation with its source")
	}
}

func sameRequest(a, b PortfolioRequest) bool {
	return a.Tier == b.Tier && a.Budget.Equal(b.Budget)
}
