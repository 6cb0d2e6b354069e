package notifier_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/r507/suguan-bot/internal/notifier"
	"github.com/r507/suguan-bot/internal/notifier/mocks"
)

const backOnlineMessage = "*The system is now online. Please resubmit your pending schedules/operations po.*"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNotifier_NotifyPending_DeliversAndRemoves(t *testing.T) {
	registry := notifier.NewRegistry()
	registry.Add(1)
	registry.Add(2)

	sender := mocks.NewMessageSender(t)
	sender.On("SendMessage", mock.Anything, mock.AnythingOfType("int64"), backOnlineMessage).Return(nil).Twice()

	n := notifier.NewNotifier(registry, sender, time.Minute, time.Second, testLogger())
	n.NotifyPending()

	assert.Equal(t, 0, registry.Len())
}

func TestNotifier_NotifyPending_RemovesOnFailureToo(t *testing.T) {
	registry := notifier.NewRegistry()
	registry.Add(1)

	sender := mocks.NewMessageSender(t)
	sender.On("SendMessage", mock.Anything, int64(1), backOnlineMessage).Return(assert.AnError).Once()

	n := notifier.NewNotifier(registry, sender, time.Minute, time.Second, testLogger())
	n.NotifyPending()

	assert.Equal(t, 0, registry.Len(), "a failed delivery still removes the chat")
}

func TestNotifier_NotifyPending_EmptyRegistry(t *testing.T) {
	registry := notifier.NewRegistry()
	sender := mocks.NewMessageSender(t)

	n := notifier.NewNotifier(registry, sender, time.Minute, time.Second, testLogger())
	n.NotifyPending()

	sender.AssertNotCalled(t, "SendMessage")
}

func TestNotifier_StartStop(t *testing.T) {
	registry := notifier.NewRegistry()
	sender := mocks.NewMessageSender(t)

	n := notifier.NewNotifier(registry, sender, time.Hour, time.Second, testLogger())

	n.Start()
	n.Stop()
}
