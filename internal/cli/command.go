package cli

import (
	"strings"

	"github.com/doky-sim/doky-cli/internal/errors"
)

type CommandKind int

const (
	CommandHelp CommandKind = iota
	CommandDisplay
	CommandOpen
	CommandMake
	CommandMove
	CommandRemove
	CommandExit
)

func (k CommandKind) String() string {
	switch k {
	case CommandHelp:
		return "help"
	case CommandDisplay:
		return "ls"
	case CommandOpen:
		return "cd"
	case CommandMake:
		return "mk"
	case CommandMove:
		return "mv"
	case CommandRemove:
		return "rm"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

type Argument int

const (
	ArgumentForce Argument = iota + 1
	ArgumentRecursive
)

// Command is one parsed input line. Target holds the path for `cd` and the
// folder name for `mk` and `rm`.
type Command struct {
	Kind      CommandKind
	Target    string
	Arguments []Argument
}

// ParseCommand tokenizes line on whitespace and matches it against the
// command grammar. Commands are case-sensitive.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, errors.WithStack(errors.ErrCommandNotRecognized)
	}

	switch name := parts[0]; {
	case name == "help":
		return Command{Kind: CommandHelp}, nil
	case name == "ls":
		return Command{Kind: CommandDisplay}, nil
	case name == "cd" && len(parts) == 2:
		return Command{Kind: CommandOpen, Target: parts[1]}, nil
	case name == "mk" && len(parts) == 2:
		return Command{Kind: CommandMake, Target: parts[1]}, nil
	case name == "mv":
		return Command{Kind: CommandMove}, nil
	case name == "rm" && len(parts) > 2:
		arguments := make([]Argument, 0, len(parts)-2)
		for _, token := range parts[2:] {
			argument, err := ParseArgument(token)
			if err != nil {
				return Command{}, err
			}
			arguments = append(arguments, argument)
		}

		return Command{Kind: CommandRemove, Target: parts[1], Arguments: arguments}, nil
	case name == "exit":
		return Command{Kind: CommandExit}, nil
	default:
		return Command{}, errors.Wrapf(errors.ErrCommandNotRecognized, "unable to run %q", line)
	}
}

func ParseArgument(token string) (Argument, error) {
	switch token {
	case "-f", "--force":
		return ArgumentForce, nil
	case "-r", "--recursive":
		return ArgumentRecursive, nil
	default:
		return 0, errors.Wrapf(errors.ErrArgsNotRecognized, "%q", token)
	}
}
