package domain

// Verdict is the binary reachability of an endpoint.
type Verdict int

const (
	Down Verdict = iota
	Up
)

// VerdictOf maps a probe outcome to a Verdict.
func VerdictOf(success bool) Verdict {
	if success {
		return Up
	}
	return Down
}

func (v Verdict) String() string {
	if v == Up {
		return "UP"
	}
	return "DOWN"
}

// Emoji is the marker used in front of a status line.
func (v Verdict) Emoji() string {
	if v == Up {
		return "✅"
	}
	return "❌"
}

// Transition is one endpoint's result for a cycle. Changed is true when the
// verdict differs from the last recorded one, or nothing was recorded yet.
type Transition struct {
	Endpoint string
	Verdict  Verdict
	Changed  bool
}
