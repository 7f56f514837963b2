package calc

import "sync"

// Session is an engine that is safe for concurrent use. Each call holds the
// session exclusively, including the nested evaluations of function
// arguments.
//
// The lock guards the session's environment only against the session's own
// calls. If the environment is shared through UseEnv, other users of it must
// not run concurrently with the session.
type Session struct {
	mu  sync.Mutex
	eng *Engine
}

// NewSession creates a session with a new engine.
func NewSession(opts ...Option) *Session {
	return &Session{eng: New(opts...)}
}

// Eval evaluates an expression. See Engine.Eval.
func (s *Session) Eval(expr string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Eval(expr)
}

// Lookup returns the value bound to name.
func (s *Session) Lookup(name string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.env.Lookup(name)
}

// Bindings returns all bindings in ascending order of name.
func (s *Session) Bindings() []Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.env.Bindings()
}

// Clear removes every binding.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.env.Clear()
}

// Remove removes the named bindings and returns the names that were not bound.
func (s *Session) Remove(names ...string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.env.Remove(names...)
}
