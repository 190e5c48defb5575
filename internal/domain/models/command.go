package models

type CommandType string

const (
	CommandStart   CommandType = "/start"
	CommandHelp    CommandType = "/help"
	CommandRemind  CommandType = "/remind"
	CommandList    CommandType = "/list"
	CommandDelete  CommandType = "/delete"
	CommandUnknown CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Args     string
	Username string
}
