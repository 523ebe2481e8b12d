package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/doky-sim/doky-cli/internal/fs"
	"github.com/doky-sim/doky-cli/internal/shell"
)

var (
	KeepGoing bool

	scriptCmd = &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fd, err := fs.Local{}.Open(args[0])
			if err != nil {
				return err
			}
			defer fd.Close()

			session, err := newSession(shell.Config{
				Reader:      shell.NewScanReader(fd, os.Stdout, true),
				StopOnError: !KeepGoing,
			})
			if err != nil {
				return err
			}

			return session.Run()
		},
		Short: "Run the commands in a file against a fresh folder tree",
		Long: "Run the commands in a file against a fresh folder tree, one command per line.\n" +
			"The first failing command stops the script unless --keep-going is given.",
		Use: "script [flags] <file>",
	}
)

func init() {
	scriptCmd.Flags().BoolVar(&KeepGoing, "keep-going", false, "report failing commands and continue with the next line")
}
