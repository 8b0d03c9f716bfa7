package models

import "strings"

// CommandType enumerates supported chat command categories.
type CommandType string

const (
	CommandMethane CommandType = "methane"
	CommandWhatIf  CommandType = "whatif"
	CommandOptions CommandType = "options"
	CommandHelp    CommandType = "help"
	CommandUnknown CommandType = "unknown"
)

// commandAliases maps accepted first words to their command.
var commandAliases = map[string]CommandType{
	"methane": CommandMethane,
	"calc":    CommandMethane,
	"whatif":  CommandWhatIf,
	"what-if": CommandWhatIf,
	"options": CommandOptions,
	"presets": CommandOptions,
	"help":    CommandHelp,
	"start":   CommandHelp,
}

// Command represents a parsed instruction extracted from chat text.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from free-form text such as
// "/methane 100 dairy improved seaweed 450".
func ParseCommand(message string) Command {
	normalized := strings.TrimSpace(strings.ToLower(message))
	cmd := Command{Type: CommandUnknown, Raw: message}

	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return cmd
	}

	if t, ok := commandAliases[strings.TrimPrefix(tokens[0], "/")]; ok {
		cmd.Type = t
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
