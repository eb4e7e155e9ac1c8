package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"notesboard/notesboard/utils/color"
)

// Confirm asks a yes/no question and reports whether the answer was yes.
// Anything else, including EOF, counts as no.
func Confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, color.ColorWarning(prompt)+" [y/N]: ")
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
