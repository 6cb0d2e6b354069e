package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/r507/suguan-bot/internal/bot/domain"
	"github.com/r507/suguan-bot/internal/bot/service"
	"github.com/r507/suguan-bot/internal/common/metrics"
	"github.com/r507/suguan-bot/internal/domain/models"
)

type BotService interface {
	ProcessCommand(ctx context.Context, command *models.Command) (string, error)

	ProcessMessage(ctx context.Context, chatID int64, text, userName string) (string, error)
}

// Poller consumes the long-poll updates channel and handles each update
// to completion, which keeps per-chat ordering trivially correct.
type Poller struct {
	telegramClient domain.TelegramClientAPI
	botService     BotService
	logger         *slog.Logger
	handleTimeout  time.Duration
	updatesChan    tgbotapi.UpdatesChannel
	stopChan       chan struct{}
}

func NewPoller(telegramClient domain.TelegramClientAPI, botService BotService, handleTimeout time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		telegramClient: telegramClient,
		botService:     botService,
		logger:         logger,
		handleTimeout:  handleTimeout,
		stopChan:       make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Starting Telegram poller")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Telegram bot API is not available")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	p.updatesChan = bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Poller received stop signal")
				return
			case update := <-p.updatesChan:
				p.processUpdate(&update)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("Stopping Telegram poller")
	close(p.stopChan)
}

func (p *Poller) processUpdate(update *tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text
	userName := fullName(update.Message.From)

	p.logger.Info("Received message",
		"chat_id", chatID,
		"text", text,
	)

	messageType := "message"
	if update.Message.IsCommand() {
		messageType = "command"
	}

	metrics.RecordUserMessage(messageType)

	ctx, cancel := context.WithTimeout(context.Background(), p.handleTimeout)
	defer cancel()

	var response string

	var err error

	if update.Message.IsCommand() {
		command := &models.Command{
			ChatID:   chatID,
			Text:     text,
			UserName: userName,
			Type:     service.GetCommandType(text),
		}

		response, err = p.botService.ProcessCommand(ctx, command)
	} else {
		response, err = p.botService.ProcessMessage(ctx, chatID, text, userName)
	}

	if err != nil {
		p.logger.Error("Failed to handle update",
			"error", err,
			"chat_id", chatID,
			"text", text,
		)

		response = "❌"
	}

	if response != "" {
		ctx, cancel := context.WithTimeout(context.Background(), p.handleTimeout)
		defer cancel()

		if err := p.telegramClient.SendMessage(ctx, chatID, response); err != nil {
			p.logger.Error("Failed to send reply",
				"error", err,
				"chat_id", chatID,
			)
		}
	}
}

func fullName(user *tgbotapi.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}

	return name
}
