package repl

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog/log"
)

// Executor runs one command line and reports whether the session should end.
type Executor interface {
	Execute(ctx context.Context, line string) bool
}

// Loop reads command lines and hands them to an Executor.
type Loop struct {
	in      io.Reader
	printer *Printer
	exec    Executor
}

// NewLoop creates a loop reading from in.
func NewLoop(in io.Reader, printer *Printer, exec Executor) *Loop {
	return &Loop{in: in, printer: printer, exec: exec}
}

// Run prompts and executes lines until the executor asks to quit, input
// ends, or ctx is done. It returns nil in all of those cases; only a read
// error is returned.
//
// A blocked read cannot be interrupted, so on cancellation the reader
// goroutine stays parked on input until the process exits or in is closed.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			errCh <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(l.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()

	for {
		l.printer.Prompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return err
				}
				log.Info().Msg("Input closed")
				return nil
			}
			if l.exec.Execute(ctx, line) {
				log.Info().Msg("Session ended by user")
				return nil
			}
		}
	}
}
