package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "suguan_bot"
)

var (
	UserMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "user_messages_total",
			Help:      "Total number of user messages processed",
		},
		[]string{"message_type"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "submissions_total",
			Help:      "Total number of spreadsheet submissions by sheet and status",
		},
		[]string{"sheet", "status"},
	)

	SheetsRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "sheets_request_duration_seconds",
			Help:      "Google Sheets append request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sheet"},
	)

	PendingNotifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "pending_notifications",
			Help:      "Number of chats awaiting a back-online notice",
		},
	)

	NotifyAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "notify_attempts_total",
			Help:      "Back-online notification attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RecordUserMessage(messageType string) {
	UserMessagesTotal.WithLabelValues(messageType).Inc()
}

func RecordSubmission(sheet, status string) {
	SubmissionsTotal.WithLabelValues(sheet, status).Inc()
}

func ObserveSheetsRequest(sheet string, duration time.Duration) {
	SheetsRequestDuration.WithLabelValues(sheet).Observe(duration.Seconds())
}

func SetPendingNotifications(count int) {
	PendingNotifications.Set(float64(count))
}

func RecordNotifyAttempt(outcome string) {
	NotifyAttemptsTotal.WithLabelValues(outcome).Inc()
}
