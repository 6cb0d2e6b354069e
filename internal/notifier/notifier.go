package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/r507/suguan-bot/internal/common/metrics"
)

const backOnlineMessage = "*The system is now online. Please resubmit your pending schedules/operations po.*"

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Notifier periodically tells every chat in the registry that the system
// is reachable again. Each chat gets at most one attempt per cycle and is
// removed whether or not the notice was delivered; a failed delivery means
// the user will re-trigger the registry the next time a write fails.
type Notifier struct {
	scheduler   *gocron.Scheduler
	registry    *Registry
	sender      MessageSender
	logger      *slog.Logger
	interval    time.Duration
	sendTimeout time.Duration
}

func NewNotifier(registry *Registry, sender MessageSender, interval, sendTimeout time.Duration, logger *slog.Logger) *Notifier {
	return &Notifier{
		scheduler:   gocron.NewScheduler(time.UTC),
		registry:    registry,
		sender:      sender,
		logger:      logger,
		interval:    interval,
		sendTimeout: sendTimeout,
	}
}

func (n *Notifier) Start() {
	n.logger.Info("Starting pending notification loop",
		"interval", n.interval.String(),
	)

	_, err := n.scheduler.Every(n.interval).Do(n.NotifyPending)
	if err != nil {
		n.logger.Error("Failed to schedule pending notification loop",
			"error", err,
		)

		return
	}

	n.scheduler.StartAsync()
}

func (n *Notifier) Stop() {
	n.logger.Info("Stopping pending notification loop")
	n.scheduler.Stop()
}

// NotifyPending runs one cycle over a snapshot of the registry. Failures
// are handled per chat and never abort the cycle.
func (n *Notifier) NotifyPending() {
	for _, chatID := range n.registry.Snapshot() {
		n.notifyOne(chatID)
	}

	metrics.SetPendingNotifications(n.registry.Len())
}

func (n *Notifier) notifyOne(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
	defer cancel()

	if err := n.sender.SendMessage(ctx, chatID, backOnlineMessage); err != nil {
		n.logger.Error("Failed to deliver back-online notice",
			"error", err,
			"chat_id", chatID,
		)
		metrics.RecordNotifyAttempt("failure")
	} else {
		metrics.RecordNotifyAttempt("success")
	}

	// Removed on both outcomes: one attempt per cycle, no backoff.
	n.registry.Discard(chatID)
}
