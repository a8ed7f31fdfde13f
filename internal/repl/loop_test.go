package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"
)

type fakeExecutor struct {
	mu    sync.Mutex
	lines []string
	quit  string
}

func (f *fakeExecutor) Execute(ctx context.Context, line string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, line)
	return line == f.quit
}

func (f *fakeExecutor) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.lines)
}

func TestLoopRunsUntilQuit(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExecutor{quit: "exit"}
	loop := NewLoop(strings.NewReader("all\ntime\nexit\nnever\n"), NewPrinter(&out), exec)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if want := []string{"all", "time", "exit"}; !slices.Equal(exec.seen(), want) {
		t.Errorf("expected lines %v, got %v", want, exec.seen())
	}
	if got := strings.Count(out.String(), "> "); got != 3 {
		t.Errorf("expected 3 prompts, got %d", got)
	}
}

func TestLoopStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExecutor{}
	loop := NewLoop(strings.NewReader("recent\n\nhelp"), NewPrinter(&out), exec)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Blank lines are passed through; the executor treats them as no-ops.
	if want := []string{"recent", "", "help"}; !slices.Equal(exec.seen(), want) {
		t.Errorf("expected lines %v, got %v", want, exec.seen())
	}
}

func TestLoopReturnsReadError(t *testing.T) {
	boom := errors.New("boom")
	loop := NewLoop(iotest.ErrReader(boom), NewPrinter(io.Discard), &fakeExecutor{})

	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	exec := &fakeExecutor{}
	loop := NewLoop(pr, NewPrinter(io.Discard), exec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	if _, err := io.WriteString(pw, "time\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.After(time.Second)
	for len(exec.seen()) == 0 {
		select {
		case <-deadline:
			t.Fatal("line was not executed")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}
