package ui

import (
	"fmt"
	"io"
)

// Cursor addressing for the fixed-layout dashboard. Helpers take an explicit
// writer so renders can target a buffer as easily as a terminal. Coordinates
// are zero-based, matching the dashboard's layout tables; ANSI rows and
// columns start at one.

// MoveTo positions the cursor at column x, row y.
func MoveTo(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y+1, x+1)
}

// At writes s starting at column x, row y.
func At(w io.Writer, x, y int, s string) {
	MoveTo(w, x, y)
	io.WriteString(w, s)
}

// Clear wipes the screen and homes the cursor.
func Clear(w io.Writer) {
	io.WriteString(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor for the duration of a render loop.
func HideCursor(w io.Writer) {
	io.WriteString(w, "\033[?25l")
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, "\033[?25h")
}
