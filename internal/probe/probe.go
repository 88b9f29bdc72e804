package probe

import (
	"context"

	"github.com/hamed0406/upnotif/internal/domain"
)

// CheckResult is the unified result of a single probe.
//
// Fields:
//   - StatusCode: HTTP status code when available; 0 for transport errors.
//   - Message: status line on a response, error text otherwise. Kept for logs
//     only; callers decide on Success alone.
type CheckResult struct {
	Success    bool
	LatencyMS  float64
	Message    string
	StatusCode int
}

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}

// Classify runs one check and reduces it to a Verdict. The raw result is
// returned alongside for logging.
func Classify(ctx context.Context, c Checker, target string) (domain.Verdict, CheckResult) {
	res := c.Check(ctx, target)
	return domain.VerdictOf(res.Success), res
}
