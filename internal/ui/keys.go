package ui

import (
	"context"
	"os"

	"golang.org/x/term"
)

// NotifyStopKey switches stdin to raw mode and cancels the run when the
// user presses 's' or 'S'. Raw mode swallows Ctrl-C as a byte, so 0x03
// cancels too. The returned restore func must run before the process
// prints normal output again. On a non-TTY stdin it is a no-op.
func NotifyStopKey(ctx context.Context, cancel context.CancelFunc) (func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	go func() {
		buf := make([]byte, 1)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			switch buf[0] {
			case 's', 'S', 0x03:
				cancel()
				return
			}
		}
	}()

	return func() { term.Restore(fd, old) }, nil
}
