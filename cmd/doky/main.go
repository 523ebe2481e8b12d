package main

import (
	"fmt"
	"os"

	"github.com/doky-sim/doky-cli/internal/cli"
	"github.com/doky-sim/doky-cli/internal/messages"
)

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if Debug {
		// %+v carries the stack trace recorded by pkg/errors
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", messages.FormatUserMessage(err.Error(), "", cli.Advice(err)))
	}

	os.Exit(1)
}
