package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doky-sim/doky-cli/cmd/doky/config"
	"github.com/doky-sim/doky-cli/internal/fs"
	"github.com/doky-sim/doky-cli/internal/settings"
	"github.com/doky-sim/doky-cli/internal/shell"
)

var (
	Debug        bool
	Plain        bool
	RootName     string
	SettingsPath string

	sessionSettings settings.Settings

	rootCmd = &cobra.Command{
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if Debug {
				_ = logging.SetLogLevel("*", "debug")
			}

			s, err := settings.Load(fs.Local{}, SettingsPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("root") {
				s.Root = RootName
			}

			if err := s.Validate(); err != nil {
				return err
			}

			sessionSettings = s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := !Plain && term.IsTerminal(int(os.Stdin.Fd()))

			var reader shell.LineReader = shell.PromptReader{}
			if !interactive {
				reader = shell.NewScanReader(os.Stdin, os.Stdout, false)
			}

			session, err := newSession(shell.Config{
				Reader:      reader,
				Banner:      sessionSettings.Banner,
				Interactive: interactive,
			})
			if err != nil {
				return err
			}

			return session.Run()
		},
		Short:         "An in-memory folder simulator",
		Long:          "Navigate and edit a simulated folder tree with mk, cd, ls and rm. Nothing is written to disk.",
		Use:           "doky [flags]",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       config.Version,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.PersistentFlags().StringVar(&RootName, "root", settings.DefaultRoot, "the name of the root folder")
	rootCmd.PersistentFlags().StringVarP(&SettingsPath, "config", "c", "", "a YAML settings file with the root name, banner and folders to start with")
	rootCmd.Flags().BoolVar(&Plain, "plain", false, "read plain lines from stdin even when it is a terminal")

	rootCmd.AddCommand(scriptCmd)
}
