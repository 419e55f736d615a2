package sim

import "sbi-in-go/trap"

// Step is one supervisor episode: optionally set up registers the way
// supervisor code would have, then trap with the given mcause.
type Step struct {
	Cause uint64
	Apply func(ctx *trap.Context)
}

// Supervisor is a scripted stand-in for supervisor-mode execution.
// Each Switch plays the next step; when the script runs out the
// supervisor completes.
type Supervisor struct {
	Steps []Step
	next  int
}

func (s *Supervisor) Switch(ctx *trap.Context) (uint64, bool) {
	if s.next >= len(s.Steps) {
		return 0, true
	}
	st := s.Steps[s.next]
	s.next++
	if st.Apply != nil {
		st.Apply(ctx)
	}
	return st.Cause, false
}

var _ trap.Switcher = (*Supervisor)(nil)
