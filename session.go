package advisor

// Session is the state of one user: the last request and the allocation
// derived from it. It is owned by its caller; concurrent users each get
// their own Session.
type Session struct {
	Request    PortfolioRequest
	Allocation Allocation
}

// NewSession returns a session with the default request and no allocation.
func NewSession() *Session {
	return &Session{Request: DefaultRequest()}
}

// Submit validates req and replaces the current allocation with a new
// suggestion. On error the session is left unchanged.
func (s *Session) Submit(e *Engine, req PortfolioRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	allocation, err := e.SuggestPortfolio(req.Tier, req.Budget)
	if err != nil {
		return err
	}
	s.Request = req
	s.Allocation = allocation
	return nil
}

// Reset clears the allocation and restores the default request.
func (s *Session) Reset() {
	s.Request = DefaultRequest()
	s.Allocation = nil
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	c.Allocation = append(Allocation(nil), s.Allocation...)
	return &c
}

// SubmitN is Submit with an explicit number of coins.
func (s *Session) SubmitN(e *Engine, req PortfolioRequest, size int) error {
	if err := req.Validate(); err != nil {
		return err
	}
	allocation, err := e.SuggestPortfolioN(req.Tier, req.Budget, size)
	if err != nil {
		return err
	}
	s.Request = req
	s.Allocation = allocation
	return nil
}
