package cli

import (
	"io"

	"github.com/pkg/errors"

	"github.com/doky-sim/doky-cli/internal/navigator"
)

type Config struct {
	Navigator Navigator
	Stdout    io.Writer
	// TerminalWidth reports the width available to `ls`. A nil func or a
	// non-positive width prints one folder per line.
	TerminalWidth func() int
}

func (c Config) Validate() error {
	if c.Navigator == nil {
		return errors.New("missing navigator")
	}

	if c.Stdout == nil {
		return errors.New("missing output writer")
	}

	return nil
}

type OpenConfig struct {
	Path string
}

func (c OpenConfig) Validate() error {
	if c.Path == "" {
		return errors.New("missing path")
	}

	return nil
}

type MakeConfig struct {
	Name string
}

func (c MakeConfig) Validate() error {
	if c.Name == "" {
		return errors.New("missing folder name")
	}

	return nil
}

type RemoveConfig struct {
	Name      string
	Arguments []Argument
}

func (c RemoveConfig) Validate() error {
	if c.Name == "" {
		return errors.New("missing folder name")
	}

	return nil
}

func (c RemoveConfig) Options() navigator.RemoveOptions {
	var opts navigator.RemoveOptions
	for _, argument := range c.Arguments {
		switch argument {
		case ArgumentForce:
			opts.Force = true
		case ArgumentRecursive:
			opts.Recursive = true
		}
	}
	return opts
}
