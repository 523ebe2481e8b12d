package shell

import (
	"fmt"
	"io"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/manifoldco/promptui"

	"github.com/doky-sim/doky-cli/internal/cli"
	"github.com/doky-sim/doky-cli/internal/errors"
	"github.com/doky-sim/doky-cli/internal/messages"
)

var log = logging.Logger("doky/shell")

const closingMessage = "Closing the application..."

type LineReader interface {
	// ReadLine shows prompt and returns the next line without its line
	// terminator. It returns io.EOF once the input is exhausted.
	ReadLine(prompt string) (string, error)
}

type Config struct {
	Service cli.Service
	Reader  LineReader
	Stdout  io.Writer
	Stderr  io.Writer
	Banner  string
	// Interactive colors error messages and leaves out the failed input line,
	// which the user can still see.
	Interactive bool
	// StopOnError ends the session with the first failing command.
	StopOnError bool
}

func (c Config) Validate() error {
	if c.Reader == nil {
		return errors.New("missing line reader")
	}

	if c.Stdout == nil || c.Stderr == nil {
		return errors.New("missing output writers")
	}

	return nil
}

// Shell is the read-execute-print loop of a session.
type Shell struct {
	Config
}

func New(cfg Config) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	return &Shell{cfg}, nil
}

// Run processes input lines until `exit` or the end of the input. Failing
// commands are reported and the session continues, unless StopOnError is set.
func (s *Shell) Run() error {
	if s.Banner != "" {
		fmt.Fprintln(s.Stdout, s.Banner)
	}

	for {
		prompt, err := s.Service.Prompt()
		if err != nil {
			return errors.Wrap(err, "unable to determine the current folder")
		}

		line, err := s.Reader.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Stdout, closingMessage)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "unable to read command")
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		command, err := cli.ParseCommand(line)
		if err == nil {
			if command.Kind == cli.CommandExit {
				fmt.Fprintln(s.Stdout, closingMessage)
				return nil
			}

			err = s.execute(command)
		}

		if err != nil {
			log.Debugw("command failed", "line", line, "error", err)
			if s.StopOnError {
				return errors.Wrapf(err, "%q failed", strings.TrimSpace(line))
			}
			s.report(line, err)
		}
	}
}

func (s *Shell) execute(command cli.Command) error {
	log.Debugw("executing command", "command", command.Kind.String(), "target", command.Target)

	switch command.Kind {
	case cli.CommandHelp:
		return s.Service.Help()
	case cli.CommandDisplay:
		return s.Service.Display()
	case cli.CommandOpen:
		return s.Service.Open(cli.OpenConfig{Path: command.Target})
	case cli.CommandMake:
		return s.Service.Make(cli.MakeConfig{Name: command.Target})
	case cli.CommandMove:
		return s.Service.Move()
	case cli.CommandRemove:
		return s.Service.Remove(cli.RemoveConfig{Name: command.Target, Arguments: command.Arguments})
	default:
		return errors.Wrapf(errors.ErrCommandNotRecognized, "unable to run %q", command.Kind.String())
	}
}

func (s *Shell) report(line string, err error) {
	if s.Interactive {
		message := messages.FormatUserMessage(err.Error(), "", cli.Advice(err))
		fmt.Fprintln(s.Stderr, promptui.Styler(promptui.FGRed)(message))
		return
	}

	fmt.Fprintln(s.Stderr, messages.FormatUserMessage(err.Error(), strings.TrimSpace(line), cli.Advice(err)))
}
