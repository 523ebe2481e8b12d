package messages

import (
	"strings"
)

// FormatUserMessage builds the text shown to the user when a command fails:
// the error message, the offending input line (if any) and a hint (if any),
// each on its own line.
func FormatUserMessage(message string, frame string, advice string) string {
	var builder strings.Builder

	if message != "" {
		builder.WriteString(message)
	}

	if frame != "" {
		builder.WriteString("\n  > ")
		builder.WriteString(frame)
	}

	if advice != "" {
		builder.WriteString("\n")
		builder.WriteString(advice)
	}

	return builder.String()
}
