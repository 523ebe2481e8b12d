package cli

import (
	"fmt"

	"github.com/doky-sim/doky-cli/internal/errors"
)

const helpText = `Available commands:
  help                  show this list
  ls                    print the current folder and its subfolders
  cd <path>             open a folder; segments are separated by "/" and ".." goes up one level
  mk <name>             create a folder in the current folder and open it
  rm <name> <flags...>  remove an empty folder; flags: -f/--force, -r/--recursive
  mv                    move a folder (not implemented yet)
  exit                  close the application`

// Service executes parsed commands against a navigator.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

func (s Service) Help() error {
	fmt.Fprintln(s.Stdout, helpText)
	return nil
}

// Display prints the current path followed by the subfolders of the current
// folder.
func (s Service) Display() error {
	path, err := s.Navigator.Path()
	if err != nil {
		return err
	}

	entries, err := s.Navigator.Entries()
	if err != nil {
		return errors.Wrapf(err, "unable to list %q", path)
	}

	fmt.Fprintln(s.Stdout, path)
	if len(entries) == 0 {
		fmt.Fprintln(s.Stdout, "  (empty)")
		return nil
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}

	width := 0
	if s.TerminalWidth != nil {
		width = s.TerminalWidth()
	}

	fmt.Fprint(s.Stdout, formatColumns(names, width, "  "))
	return nil
}

func (s Service) Open(cfg OpenConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	return s.Navigator.Open(cfg.Path)
}

func (s Service) Make(cfg MakeConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	return s.Navigator.Create(cfg.Name)
}

func (s Service) Move() error {
	return errors.Wrap(errors.ErrNotImplemented, "mv")
}

func (s Service) Remove(cfg RemoveConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	return s.Navigator.Remove(cfg.Name, cfg.Options())
}

// Prompt is the label shown before each input line.
func (s Service) Prompt() (string, error) {
	return s.Navigator.Path()
}

// Advice suggests what the user can do about err, or returns "".
func Advice(err error) string {
	switch {
	case errors.Is(err, errors.ErrCommandNotRecognized):
		return "Type `help` to list the available commands. `rm` needs at least one flag, e.g. `rm <name> -f`."
	case errors.Is(err, errors.ErrArgsNotRecognized):
		return "`rm` accepts -f/--force and -r/--recursive."
	case errors.Is(err, errors.ErrInvalidName):
		return "Folder names must not be empty, must not contain \"/\" or \"\\\", and must be unique within their folder."
	case errors.Is(err, errors.ErrInvalidPath), errors.Is(err, errors.ErrNotFound):
		return "Use `ls` to see the folders available here."
	case errors.Is(err, errors.ErrFolderNotEmpty):
		return "Remove its subfolders first."
	case errors.Is(err, errors.ErrInvalidParent):
		return "The root folder has no parent."
	default:
		return ""
	}
}
