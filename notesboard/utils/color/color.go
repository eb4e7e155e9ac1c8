// notesboard/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	promptColor  = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	titleColor   = color.New(color.FgHiYellow, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

func ColorPrompt(s string) string {
	return promptColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorTitle(s string) string {
	return titleColor.Sprint(s)
}

func ColorSuccess(s string) string {
	return successColor.Sprint(s)
}

func ColorMuted(s string) string {
	return mutedColor.Sprint(s)
}

// Disable turns colour off, e.g. for --no-color or when output is piped.
func Disable() {
	color.NoColor = true
}
