package main

import (
	"os"

	tsize "github.com/kopoli/go-terminal-size"

	"github.com/doky-sim/doky-cli/internal/cli"
	"github.com/doky-sim/doky-cli/internal/memoryfs"
	"github.com/doky-sim/doky-cli/internal/navigator"
	"github.com/doky-sim/doky-cli/internal/shell"
)

// newSession builds a fresh tree from the loaded settings and wires a shell
// around it. cfg only needs the reader and presentation options.
func newSession(cfg shell.Config) (*shell.Shell, error) {
	tree := memoryfs.NewTree(sessionSettings.Root)
	if err := sessionSettings.Populate(tree); err != nil {
		return nil, err
	}

	service, err := cli.NewService(cli.Config{
		Navigator:     navigator.New(tree),
		Stdout:        os.Stdout,
		TerminalWidth: terminalWidth,
	})
	if err != nil {
		return nil, err
	}

	cfg.Service = service
	cfg.Stdout = os.Stdout
	cfg.Stderr = os.Stderr

	return shell.New(cfg)
}

func terminalWidth() int {
	size, err := tsize.GetSize()
	if err != nil {
		return 0
	}

	return size.Width
}
