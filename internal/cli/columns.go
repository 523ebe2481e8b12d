package cli

import (
	"strings"
	"unicode/utf8"
)

const columnGap = 2

// formatColumns lays names out row by row in as many equally wide columns as
// fit into width. Every line starts with indent and ends with a newline.
func formatColumns(names []string, width int, indent string) string {
	var builder strings.Builder

	cellWidth := 0
	for _, name := range names {
		cellWidth = max(cellWidth, utf8.RuneCountInString(name))
	}
	cellWidth += columnGap

	columns := 1
	if available := width - len(indent); available > 0 {
		columns = max(1, available/cellWidth)
	}

	for i, name := range names {
		if i%columns == 0 {
			builder.WriteString(indent)
		}

		builder.WriteString(name)

		if i%columns == columns-1 || i == len(names)-1 {
			builder.WriteString("\n")
		} else {
			builder.WriteString(strings.Repeat(" ", cellWidth-utf8.RuneCountInString(name)))
		}
	}

	return builder.String()
}
