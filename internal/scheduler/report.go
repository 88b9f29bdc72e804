package scheduler

import (
	"fmt"
	"strings"

	"github.com/hamed0406/upnotif/internal/domain"
)

const (
	startupHeader = "🔍 *URL Monitor Started*\nInitial status check:"
	changesHeader = "🔔 *URL Status Changes*"
)

func statusLine(t domain.Transition) string {
	return fmt.Sprintf("%s %s is %s", t.Verdict.Emoji(), t.Endpoint, t.Verdict)
}

func changeLine(t domain.Transition) string {
	return fmt.Sprintf("%s %s is now %s", t.Verdict.Emoji(), t.Endpoint, t.Verdict)
}

func startupMessage(results []domain.Transition) string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, startupHeader)
	for _, r := range results {
		lines = append(lines, statusLine(r))
	}
	return strings.Join(lines, "\n")
}

func changesMessage(changed []domain.Transition) string {
	lines := make([]string, 0, len(changed)+1)
	lines = append(lines, changesHeader)
	for _, r := range changed {
		lines = append(lines, changeLine(r))
	}
	return strings.Join(lines, "\n")
}
