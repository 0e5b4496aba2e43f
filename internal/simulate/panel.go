package simulate

// Record is one agent's state in one simulated period. The collected panel is
// the primary artifact for "what happened" in a simulation run.
type Record struct {
	Period int
	Agent  int
	Age    int

	MNrm float64
	CNrm float64
	ANrm float64
	PLvl float64
	ALvl float64
}

// Snapshot captures every agent's current state.
func (s *Simulator) Snapshot() []Record {
	out := make([]Record, len(s.ANrm))
	for i := range s.ANrm {
		out[i] = Record{
			Period: s.t,
			Agent:  i,
			Age:    s.Age[i],
			MNrm:   s.MNrm[i],
			CNrm:   s.CNrm[i],
			ANrm:   s.ANrm[i],
			PLvl:   s.PLvl[i],
			ALvl:   s.ANrm[i] * s.PLvl[i],
		}
	}
	return out
}

// RunPanel simulates periods steps and returns the full agent-by-period
// panel, one Snapshot per step.
func (s *Simulator) RunPanel(periods int) []Record {
	if periods <= 0 {
		periods = s.params.SimPeriods
	}
	out := make([]Record, 0, periods*len(s.ANrm))
	for k := 0; k < periods; k++ {
		s.Step()
		out = append(out, s.Snapshot()...)
	}
	return out
}
