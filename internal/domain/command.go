package domain

import "strings"

// CommandKind вариант slash-команды
type CommandKind string

const (
	CommandStart           CommandKind = "start"
	CommandHelp            CommandKind = "help"
	CommandStatus          CommandKind = "status"
	CommandProjects        CommandKind = "projects"
	CommandMute            CommandKind = "mute"
	CommandUnmute          CommandKind = "unmute"
	CommandAccredit        CommandKind = "accredit"
	CommandAccreditPending CommandKind = "accredit_pending"
	CommandAccreditView    CommandKind = "accredit_view"
	CommandAccreditApprove CommandKind = "accredit_approve"
	CommandAccreditReject  CommandKind = "accredit_reject"
	CommandUnknown         CommandKind = "unknown"
)

var commandVerbs = map[string]CommandKind{
	"/start":            CommandStart,
	"/help":             CommandHelp,
	"/status":           CommandStatus,
	"/projects":         CommandProjects,
	"/mute":             CommandMute,
	"/unmute":           CommandUnmute,
	"/accredit":         CommandAccredit,
	"/accredit_pending": CommandAccreditPending,
	"/accredit_view":    CommandAccreditView,
	"/accredit_approve": CommandAccreditApprove,
	"/accredit_reject":  CommandAccreditReject,
}

// Command разобранная slash-команда: глагол и типизированные аргументы
type Command struct {
	Kind   CommandKind
	Raw    string // Текст команды без крайних пробелов
	Verb   string // Глагол в нижнем регистре без @username бота
	ID     string // Первый аргумент для accredit_view / accredit_approve / accredit_reject
	Reason string // Остальные аргументы accredit_reject, склеенные одиночными пробелами
}

// IsCommand проверяет, что текст является slash-командой
func IsCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

// ParseCommand разбирает текст команды один раз
func ParseCommand(text string) Command {
	cmd := Command{Kind: CommandUnknown, Raw: strings.TrimSpace(text)}

	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return cmd
	}

	verb := strings.ToLower(fields[0])
	if at := strings.IndexByte(verb, '@'); at > 0 {
		verb = verb[:at]
	}
	cmd.Verb = verb

	kind, ok := commandVerbs[verb]
	if !ok {
		return cmd
	}
	cmd.Kind = kind

	args := fields[1:]
	switch kind {
	case CommandAccreditView, CommandAccreditApprove:
		if len(args) > 0 {
			cmd.ID = args[0]
		}
	case CommandAccreditReject:
		if len(args) > 0 {
			cmd.ID = args[0]
			cmd.Reason = strings.Join(args[1:], " ")
		}
	}

	return cmd
}

// RequiresID проверяет, что команде нужен идентификатор заявки
func (c Command) RequiresID() bool {
	switch c.Kind {
	case CommandAccreditView, CommandAccreditApprove, CommandAccreditReject:
		return true
	default:
		return false
	}
}
