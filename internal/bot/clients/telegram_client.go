package clients

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/r507/suguan-bot/internal/bot/domain"
)

// chatLimiters throttles outbound sends per chat to stay inside the
// Telegram per-chat delivery limits.
type chatLimiters struct {
	limiters map[int64]*chatLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

type chatLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newChatLimiters(perSecond, burst int) *chatLimiters {
	return &chatLimiters{
		limiters: make(map[int64]*chatLimiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *chatLimiters) get(chatID int64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.limiters[chatID]
	if !exists {
		entry = &chatLimiter{
			limiter: rate.NewLimiter(l.rate, l.burst),
		}
		l.limiters[chatID] = entry
	}

	entry.lastSeen = time.Now()

	return entry.limiter
}

func (l *chatLimiters) cleanup(olderThan time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for chatID, entry := range l.limiters {
		if time.Since(entry.lastSeen) > olderThan {
			delete(l.limiters, chatID)
		}
	}
}

type TelegramClient struct {
	bot      *tgbotapi.BotAPI
	limiters *chatLimiters
	logger   *slog.Logger
}

func NewTelegramClient(token string, sendRateLimit, sendRateBurst int, logger *slog.Logger) domain.TelegramClientAPI {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create Telegram client", "error", err)
	}

	client := &TelegramClient{
		bot:      bot,
		limiters: newChatLimiters(sendRateLimit, sendRateBurst),
		logger:   logger,
	}

	go client.cleanupLimiters()

	return client
}

// SetBaseURL points the client at a different API endpoint (tests).
func (c *TelegramClient) SetBaseURL(url string) {
	if c.bot != nil {
		c.bot.SetAPIEndpoint(url)
	}
}

func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram client is not initialized")
	}

	if err := c.limiters.get(chatID).Wait(ctx); err != nil {
		return fmt.Errorf("waiting for send slot: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

func (c *TelegramClient) SetMyCommands(_ context.Context, commands []domain.BotCommand) error {
	if c.bot == nil {
		return fmt.Errorf("telegram client is not initialized")
	}

	botCommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botCommands = append(botCommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	if _, err := c.bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	return nil
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func (c *TelegramClient) cleanupLimiters() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		c.limiters.cleanup(time.Hour)
	}
}
