// Package ledger keeps the last observed verdict per endpoint for the
// lifetime of the process.
package ledger

import "github.com/hamed0406/upnotif/internal/domain"

// Ledger is not safe for concurrent use; the monitor loop is its only writer.
type Ledger struct {
	last map[string]domain.Verdict
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{last: make(map[string]domain.Verdict)}
}

// Evaluate records v for endpoint and reports whether it is a change. An
// endpoint with no prior entry always counts as changed.
func (l *Ledger) Evaluate(endpoint string, v domain.Verdict) bool {
	prev, ok := l.last[endpoint]
	changed := !ok || prev != v
	l.last[endpoint] = v
	return changed
}

// Get returns the recorded verdict; ok is false if the endpoint was never seen.
func (l *Ledger) Get(endpoint string) (v domain.Verdict, ok bool) {
	v, ok = l.last[endpoint]
	return v, ok
}

// Len is the number of endpoints seen so far.
func (l *Ledger) Len() int { return len(l.last) }
