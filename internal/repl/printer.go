// Package repl provides the line-oriented terminal interface.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/xonecas/termchat/internal/constants"
	"github.com/xonecas/termchat/internal/core"
)

// Printer writes command results and notifications to the terminal.
// Writes from the command loop and the listener are serialized.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

var _ core.Output = (*Printer)(nil)

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Prompt prints the input prompt.
func (p *Printer) Prompt() {
	p.write(constants.Prompt)
}

// Message prints a message line.
func (p *Printer) Message(line core.MessageLine) {
	p.write(formatMessage(line) + "\n")
}

// Notify prints a message that interrupted the prompt, then restores the prompt.
func (p *Printer) Notify(line core.MessageLine) {
	p.write("\n" + formatMessage(line) + "\n" + constants.Prompt)
}

// List prints names numbered from 1.
func (p *Printer) List(names []string) {
	if len(names) == 0 {
		p.write(hintStyle.Render("No contacts in this list") + "\n")
		return
	}

	var b []byte
	for i, name := range names {
		b = append(b, indexStyle.Render(strconv.Itoa(i+1)+".")...)
		b = append(b, ' ')
		b = append(b, name...)
		b = append(b, '\n')
	}
	p.write(string(b))
}

// Clock prints the time of day.
func (p *Printer) Clock(t time.Time) {
	p.write(t.Format(constants.ClockLayout) + "\n")
}

// Info prints an informational line.
func (p *Printer) Info(text string) {
	p.write(infoStyle.Render(text) + "\n")
}

// Warn prints a warning and an optional usage hint.
func (p *Printer) Warn(text, hint string) {
	out := warnStyle.Render("[WARN]") + " " + text + "\n"
	if hint != "" {
		out += hintStyle.Render(hint) + "\n"
	}
	p.write(out)
}

// Error prints a one-line diagnostic.
func (p *Printer) Error(err error) {
	p.write(errorStyle.Render("[ERROR]") + " " + err.Error() + "\n")
}

// Help prints the command reference.
func (p *Printer) Help() {
	p.write(RenderHelp() + "\n")
}

func (p *Printer) write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	io.WriteString(p.w, s)
}

func formatMessage(line core.MessageLine) string {
	from, to := peerNameStyle.Render(line.From), ownNameStyle.Render(line.To)
	if line.Own {
		from, to = ownNameStyle.Render(line.From), peerNameStyle.Render(line.To)
	}
	ts := timestampStyle.Render("[" + line.At.Format(constants.ClockLayout) + "]")
	return fmt.Sprintf("%s %s -> %s : %s", ts, from, to, line.Text)
}
