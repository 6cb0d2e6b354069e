package models

type CommandType string

const (
	CommandStart      CommandType = "/start"
	CommandHelp       CommandType = "/help"
	CommandChatID     CommandType = "/chatid"
	CommandGuidelines CommandType = "/guidelines"
	CommandSend       CommandType = "/send"
	CommandInfo       CommandType = "/info"
	CommandConcern    CommandType = "/concern"
	CommandReview     CommandType = "/review"
	CommandStats      CommandType = "/stats"
	CommandYes        CommandType = "/yes"
	CommandSubmit     CommandType = "/submit"
	CommandCancel     CommandType = "/cancel"
	CommandUnknown    CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	Text     string
	UserName string
}
