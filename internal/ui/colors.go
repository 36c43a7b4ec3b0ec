package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Styling is resolved once per process: a TTY gets colors and cursor
// addressing, piped output gets plain text.
var enabled = term.IsTerminal(int(os.Stdout.Fd()))

// Enabled reports whether ANSI styling and cursor addressing are active.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides TTY detection for piped output and tests.
func SetEnabled(on bool) {
	enabled = on
}

// colorize applies color only while styling is enabled
func colorize(color, msg string) string {
	if !enabled {
		return msg
	}
	return color + msg + Reset
}

// OK formats a success message with [OK] prefix in green
func OK(msg string) string {
	prefix := colorize(Green, "[OK]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Error formats an error message with [ERROR] prefix in red
func Error(msg string) string {
	prefix := colorize(Red, "[ERROR]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func Warn(msg string) string {
	prefix := colorize(Yellow, "[WARN]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Info formats an info message with [INFO] prefix in cyan
func Info(msg string) string {
	prefix := colorize(Cyan, "[INFO]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Title formats a section title in bold cyan
func Title(msg string) string {
	return colorize(Bold+Cyan, msg)
}

// PrintOK prints a success message
func PrintOK(msg string) {
	fmt.Println(OK(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(Error(msg))
}

// PrintWarn prints a warning message
func PrintWarn(msg string) {
	fmt.Println(Warn(msg))
}

// PrintInfo prints an info message
func PrintInfo(msg string) {
	fmt.Println(Info(msg))
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}
