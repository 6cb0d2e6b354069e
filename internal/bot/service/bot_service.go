package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainerrors "github.com/r507/suguan-bot/internal/domain/errors"
	"github.com/r507/suguan-bot/internal/domain/models"
	"github.com/r507/suguan-bot/internal/domain/parser"
	"github.com/r507/suguan-bot/internal/sheets"
)

type SessionRepository interface {
	GetDialog(ctx context.Context, chatID int64) (models.Dialog, error)

	SetDialog(ctx context.Context, chatID int64, dialog models.Dialog) error

	ClearDialog(ctx context.Context, chatID int64) error
}

type SubmissionGateway interface {
	AppendRow(ctx context.Context, sheet string, row []any) error
}

type PendingRegistry interface {
	Add(chatID int64)

	Discard(chatID int64)
}

// BotService drives the per-chat conversation state machine and turns
// confirmed drafts into spreadsheet rows.
type BotService struct {
	sessionRepo SessionRepository
	gateway     SubmissionGateway
	pending     PendingRegistry
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

func NewBotService(
	sessionRepo SessionRepository,
	gateway SubmissionGateway,
	pending PendingRegistry,
	location *time.Location,
	logger *slog.Logger,
) *BotService {
	return &BotService{
		sessionRepo: sessionRepo,
		gateway:     gateway,
		pending:     pending,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	switch command.Type {
	case models.CommandStart:
		return s.handleStart(ctx, command)
	case models.CommandHelp:
		return helpText, nil
	case models.CommandChatID:
		return chatIDText(command.ChatID), nil
	case models.CommandGuidelines:
		return guidelinesText, nil
	case models.CommandSend:
		return s.handleSend(ctx, command)
	case models.CommandInfo:
		return s.handleInfo(ctx, command)
	case models.CommandConcern:
		return s.handleConcern(ctx, command)
	case models.CommandReview:
		// Requesting a review proves the user is reachable again, so any
		// stale back-online notice is dropped.
		s.pending.Discard(command.ChatID)

		return s.handleLogOnly(ctx, command, sheets.ReviewSheet, "Automatic review request", reviewText, errSavingReviewText)
	case models.CommandStats:
		return s.handleLogOnly(ctx, command, sheets.StatsSheet, "Automatic stats request", statsText, errSavingStatsText)
	case models.CommandYes:
		return s.handleLogOnly(ctx, command, sheets.YesSheet, "Automatic yes request", yesText, errSavingYesText)
	case models.CommandSubmit:
		return s.handleSubmit(ctx, command)
	case models.CommandCancel:
		return s.handleCancel(ctx, command)
	case models.CommandUnknown:
		// Commands outside the configured set are ignored.
		return "", nil
	default:
		return "", nil
	}
}

// ProcessMessage handles non-command text according to the chat's
// active dialog. Text outside any dialog is ignored.
func (s *BotService) ProcessMessage(ctx context.Context, chatID int64, text, userName string) (string, error) {
	dialog, err := s.sessionRepo.GetDialog(ctx, chatID)
	if err != nil {
		return "", err
	}

	switch d := dialog.(type) {
	case nil:
		if strings.HasPrefix(text, "/") {
			command := &models.Command{
				ChatID:   chatID,
				Text:     text,
				UserName: userName,
				Type:     GetCommandType(text),
			}

			return s.ProcessCommand(ctx, command)
		}

		return "", nil
	case *models.ScheduleDialog:
		return s.handleScheduleInput(ctx, chatID, text, d)
	case *models.PersonalInfoDialog:
		if d.Step != models.StepAwaitingInput {
			return "", nil
		}

		return s.handlePersonalInfoInput(ctx, chatID, text)
	case *models.ConcernDialog:
		return s.handleConcernInput(ctx, chatID, text, userName)
	default:
		return "", fmt.Errorf("unknown dialog state for chat %d", chatID)
	}
}

func (s *BotService) handleStart(ctx context.Context, command *models.Command) (string, error) {
	greetingName := strings.TrimSpace(command.UserName)
	if greetingName == "" {
		greetingName = "Kuya"
	}

	row := []any{command.ChatID, s.timestamp(), command.UserName, "Unknown"}
	if err := s.gateway.AppendRow(ctx, sheets.RegistrationSheet, row); err != nil {
		// Registration logging is best-effort and never blocks the greeting.
		s.logger.Error("Failed to log registration",
			"error", err,
			"chat_id", command.ChatID,
		)
	}

	return fmt.Sprintf("Hello po Ka %s! 👋\n\n%s", greetingName, helpText), nil
}

func (s *BotService) handleSend(ctx context.Context, command *models.Command) (string, error) {
	s.pending.Discard(command.ChatID)

	if err := s.sessionRepo.SetDialog(ctx, command.ChatID, &models.ScheduleDialog{Step: models.StepAwaitingInput}); err != nil {
		return "", err
	}

	return sendPromptText, nil
}

func (s *BotService) handleInfo(ctx context.Context, command *models.Command) (string, error) {
	s.pending.Discard(command.ChatID)

	if err := s.sessionRepo.SetDialog(ctx, command.ChatID, &models.PersonalInfoDialog{Step: models.StepAwaitingInput}); err != nil {
		return "", err
	}

	return infoPromptText, nil
}

func (s *BotService) handleConcern(ctx context.Context, command *models.Command) (string, error) {
	s.pending.Discard(command.ChatID)

	if err := s.sessionRepo.SetDialog(ctx, command.ChatID, &models.ConcernDialog{}); err != nil {
		return "", err
	}

	return concernPromptText, nil
}

func (s *BotService) handleCancel(ctx context.Context, command *models.Command) (string, error) {
	if err := s.sessionRepo.ClearDialog(ctx, command.ChatID); err != nil {
		return "", err
	}

	return cancelText, nil
}

// handleLogOnly covers the commands that only append a marker row:
// /review, /stats and /yes. The acknowledgement is given even when the
// append fails; the failure notice follows it.
func (s *BotService) handleLogOnly(ctx context.Context, command *models.Command, sheet, marker, ack, failure string) (string, error) {
	row := []any{command.ChatID, s.timestamp(), command.UserName, marker}

	if err := s.gateway.AppendRow(ctx, sheet, row); err != nil {
		s.logger.Error("Failed to append marker row",
			"error", err,
			"chat_id", command.ChatID,
			"sheet", sheet,
		)
		s.pending.Add(command.ChatID)

		return ack + "\n\n" + failure, nil
	}

	return ack, nil
}

func (s *BotService) handleSubmit(ctx context.Context, command *models.Command) (string, error) {
	dialog, err := s.sessionRepo.GetDialog(ctx, command.ChatID)
	if err != nil {
		return "", err
	}

	switch d := dialog.(type) {
	case *models.ScheduleDialog:
		if d.Step != models.StepAwaitingConfirmation || d.Draft == nil {
			return "", nil
		}

		return s.submitSchedule(ctx, command, d)
	case *models.PersonalInfoDialog:
		if d.Step != models.StepAwaitingConfirmation || d.Draft == nil {
			return "", nil
		}

		return s.submitPersonalInfo(ctx, command, d.Draft)
	case *models.ConcernDialog:
		return s.submitConcern(ctx, command, d.Draft)
	default:
		return "", nil
	}
}

func (s *BotService) submitSchedule(ctx context.Context, command *models.Command, dialog *models.ScheduleDialog) (string, error) {
	draft := dialog.Draft
	row := []any{
		command.ChatID,
		s.timestamp(),
		draft.Day,
		draft.Time,
		draft.Gampanin,
		draft.Lokal,
		command.UserName,
		draft.Language,
	}

	if err := s.gateway.AppendRow(ctx, sheets.SuguanSheet, row); err != nil {
		s.logger.Error("Failed to submit suguan",
			"error", err,
			"chat_id", command.ChatID,
		)
		s.pending.Add(command.ChatID)

		// The draft is kept and the dialog regresses one step so the
		// user can retry without retyping.
		setErr := s.sessionRepo.SetDialog(ctx, command.ChatID, &models.ScheduleDialog{
			Step:  models.StepAwaitingInput,
			Draft: draft,
		})
		if setErr != nil {
			return "", setErr
		}

		return errSavingDataText, nil
	}

	if err := s.sessionRepo.ClearDialog(ctx, command.ChatID); err != nil {
		return "", err
	}

	return scheduleSubmittedText, nil
}

func (s *BotService) submitPersonalInfo(ctx context.Context, command *models.Command, draft *models.PersonalInfoRecord) (string, error) {
	row := []any{
		command.ChatID,
		s.timestamp(),
		draft.FirstName,
		draft.LastName,
		draft.Uri,
		draft.Lokal,
		draft.District,
		draft.Housing,
		draft.CompanionChatID,
		draft.CompanionName,
	}

	if err := s.gateway.AppendRow(ctx, sheets.PersonalInfoSheet, row); err != nil {
		s.logger.Error("Failed to submit personal info",
			"error", err,
			"chat_id", command.ChatID,
		)
		s.pending.Add(command.ChatID)

		// Unlike the schedule dialog, the draft is dropped here.
		if clearErr := s.sessionRepo.ClearDialog(ctx, command.ChatID); clearErr != nil {
			return "", clearErr
		}

		return errSavingInfoText, nil
	}

	if err := s.sessionRepo.ClearDialog(ctx, command.ChatID); err != nil {
		return "", err
	}

	return infoSubmittedText, nil
}

func (s *BotService) submitConcern(ctx context.Context, command *models.Command, draft *models.ConcernRecord) (string, error) {
	if draft == nil {
		if err := s.sessionRepo.ClearDialog(ctx, command.ChatID); err != nil {
			return "", err
		}

		return noConcernText, nil
	}

	row := []any{command.ChatID, s.timestamp(), draft.UserName, draft.Message}

	if err := s.gateway.AppendRow(ctx, sheets.InboxSheet, row); err != nil {
		s.logger.Error("Failed to submit concern",
			"error", err,
			"chat_id", command.ChatID,
		)
		s.pending.Add(command.ChatID)

		if clearErr := s.sessionRepo.ClearDialog(ctx, command.ChatID); clearErr != nil {
			return "", clearErr
		}

		return errSendingConcernText, nil
	}

	if err := s.sessionRepo.ClearDialog(ctx, command.ChatID); err != nil {
		return "", err
	}

	return concernSubmittedText, nil
}

func (s *BotService) handleScheduleInput(ctx context.Context, chatID int64, text string, dialog *models.ScheduleDialog) (string, error) {
	record, err := parser.ParseSchedule(text)
	if err != nil {
		// Invalid text regresses a pending confirmation back to input;
		// the previous draft stays around but must be re-entered.
		setErr := s.sessionRepo.SetDialog(ctx, chatID, &models.ScheduleDialog{
			Step:  models.StepAwaitingInput,
			Draft: dialog.Draft,
		})
		if setErr != nil {
			return "", setErr
		}

		return validationMessage(err), nil
	}

	if err := s.sessionRepo.SetDialog(ctx, chatID, &models.ScheduleDialog{
		Step:  models.StepAwaitingConfirmation,
		Draft: record,
	}); err != nil {
		return "", err
	}

	return s.scheduleConfirmationText(record), nil
}

func (s *BotService) handlePersonalInfoInput(ctx context.Context, chatID int64, text string) (string, error) {
	record, err := parser.ParsePersonalInfo(text)
	if err != nil {
		return validationMessage(err), nil
	}

	if err := s.sessionRepo.SetDialog(ctx, chatID, &models.PersonalInfoDialog{
		Step:  models.StepAwaitingConfirmation,
		Draft: record,
	}); err != nil {
		return "", err
	}

	return infoConfirmationText(record), nil
}

func (s *BotService) handleConcernInput(ctx context.Context, chatID int64, text, userName string) (string, error) {
	// New text while a draft exists silently replaces it.
	if err := s.sessionRepo.SetDialog(ctx, chatID, &models.ConcernDialog{
		Draft: parser.ParseConcern(text, userName),
	}); err != nil {
		return "", err
	}

	return concernRecordedText, nil
}

var dayIndex = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

// upcomingDate is the date of the next occurrence of the weekday within
// the current Monday-to-Sunday week, in the organization's timezone.
func (s *BotService) upcomingDate(day string) time.Time {
	now := s.now().In(s.location)
	current := (int(now.Weekday()) + 6) % 7
	diff := (dayIndex[day] - current + 7) % 7

	return now.AddDate(0, 0, diff)
}

func (s *BotService) timestamp() string {
	return s.now().In(s.location).Format(sheets.TimestampLayout)
}

func (s *BotService) scheduleConfirmationText(record *models.ScheduleRecord) string {
	return fmt.Sprintf(
		"*Please confirm your suguan po:*\n\n"+
			"*Date:* %s\n"+
			"*Day:* %s\n"+
			"*Time:* %s\n"+
			"*Lokal:* %s\n"+
			"*Gampanin:* %s\n"+
			"*Language:* %s\n\n"+
			"If everything is correct po, send /submit\n"+
			"To start over po, send /send",
		s.upcomingDate(record.Day).Format("January 02, 2006"),
		record.DayFull,
		record.Time,
		record.Lokal,
		record.Gampanin,
		record.Language,
	)
}

func infoConfirmationText(record *models.PersonalInfoRecord) string {
	return fmt.Sprintf(
		"*Is your information correct?*\n\n"+
			"*First Name:* %s\n"+
			"*Last Name:* %s\n"+
			"*Uri:* %s\n"+
			"*Lokal:* %s\n"+
			"*District:* %s\n"+
			"*Housing:* %s\n"+
			"*Wife Chat ID:* %s\n"+
			"*Wife Name:* %s\n\n"+
			"*If correct, send* /submit\n"+
			"*To start over, send* /info",
		record.FirstName,
		record.LastName,
		record.UriDisplay,
		record.Lokal,
		record.District,
		record.Housing,
		record.CompanionChatID,
		record.CompanionName,
	)
}

// GetCommandType resolves the leading token of a message to a command.
func GetCommandType(text string) models.CommandType {
	command := strings.Split(text, " ")[0]
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}

	switch command {
	case "/start":
		return models.CommandStart
	case "/help":
		return models.CommandHelp
	case "/chatid":
		return models.CommandChatID
	case "/guidelines":
		return models.CommandGuidelines
	case "/send":
		return models.CommandSend
	case "/info":
		return models.CommandInfo
	case "/concern":
		return models.CommandConcern
	case "/review":
		return models.CommandReview
	case "/stats":
		return models.CommandStats
	case "/yes":
		return models.CommandYes
	case "/submit":
		return models.CommandSubmit
	case "/cancel":
		return models.CommandCancel
	default:
		return models.CommandUnknown
	}
}

func validationMessage(err error) string {
	switch e := err.(type) {
	case *domainerrors.ErrWrongValueCount:
		if e.Expected == 5 {
			return "*Please provide exactly 5 values separated by commas:* day, time, local, gampanin, language"
		}

		return "*Please provide exactly 8 values po separated by periods (.)*:\n" +
			"_First Name. Last Name. Uri. Assigned Lokal. District. Housing Address. Wife Chat ID. Wife Name_\n\n" +
			"_Example:_ Juan. Dela Cruz. Minister. V Luna. District 1. Green Condo Unit#. 55247753. Maria Dela Cruz"
	case *domainerrors.ErrInvalidDay:
		return fmt.Sprintf("*Invalid day:* _%s_. Please use day abbreviations (Mon, Tue, etc.)", e.Value)
	case *domainerrors.ErrInvalidTime:
		return fmt.Sprintf("*Invalid time:* _%s_. Please use formats like '5 AM', '5:30PM', '0530AM'", e.Value)
	case *domainerrors.ErrInvalidGampanin:
		return fmt.Sprintf("*Invalid gampanin:* _%s_. Please use one of: S1, S2, R1, R2, S, R, SL1, SL2, SLR1, SLR2", e.Value)
	case *domainerrors.ErrInvalidLanguage:
		return fmt.Sprintf("*Invalid language:* _%s_. Please use 3-letter codes like Eng, Tag, Spa", e.Value)
	case *domainerrors.ErrInvalidUri:
		return fmt.Sprintf("*Invalid Uri:* _%s_. *Please use:* Minister/Min/M, Regular/Reg/R, Student/Stu/S", e.Value)
	case *domainerrors.ErrInvalidCompanionID:
		return "*Wife Chat ID must be a number po.*\n\n_Example:_ 55251000053"
	default:
		return "❌"
	}
}
