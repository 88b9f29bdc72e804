package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single webhook delivery.
const DefaultTimeout = 30 * time.Second

type Notifier interface {
	Send(ctx context.Context, message string) error
}

// New picks the delivery mode once. In test mode every message goes to the
// log and the webhook is never contacted.
func New(webhook string, testMode bool, logger *zap.Logger) Notifier {
	if testMode {
		return NewConsole(logger)
	}
	return NewSlack(webhook, DefaultTimeout)
}

// Console writes notifications to the operational log.
type Console struct {
	Logger *zap.Logger
}

func NewConsole(logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{Logger: logger}
}

func (c *Console) Send(_ context.Context, message string) error {
	c.Logger.Info("[TEST MODE] Slack notification", zap.String("message", message))
	return nil
}
