// Package ui provides console output helpers for the bindchain CLI.
//
// Colors respect the --no-color flag and the NO_COLOR environment variable:
//   - Green: values that are present
//   - Yellow: Nothing and empty results
//   - Red: errors
//   - Bold: headers and labels
//   - Dim: logs and inputs
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors configures global color output based on the noColor flag.
// Call it right after flag parsing.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Header prints a bold header with an underline separator.
func Header(text string) {
	_, _ = Bold.Println(text)
	fmt.Println(strings.Repeat("=", len([]rune(text))))
}

// Present prints a green result line with a checkmark prefix.
func Present(msg string) {
	_, _ = Green.Println("✓ " + msg)
}

// Absent prints a yellow result line with a dash prefix.
func Absent(msg string) {
	_, _ = Yellow.Println("∅ " + msg)
}

// Info prints a cyan informational message.
func Info(msg string) {
	_, _ = Cyan.Println("ℹ " + msg)
}

// Errorf prints a formatted red error message with an X prefix.
func Errorf(format string, args ...any) {
	_, _ = Red.Printf("✗ "+format+"\n", args...)
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for less important text.
func DimText(text string) string {
	return Dim.Sprint(text)
}
