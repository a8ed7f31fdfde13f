package core

import (
	"sync"
	"time"
)

// recordingOutput captures everything a Commander or InboundHandler prints.
type recordingOutput struct {
	mu       sync.Mutex
	messages []MessageLine
	notified []MessageLine
	lists    [][]string
	clocks   []time.Time
	infos    []string
	warns    []string
	errs     []error
	helps    int
}

func (o *recordingOutput) Message(line MessageLine) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, line)
}

func (o *recordingOutput) Notify(line MessageLine) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notified = append(o.notified, line)
}

func (o *recordingOutput) List(names []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lists = append(o.lists, names)
}

func (o *recordingOutput) Clock(t time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clocks = append(o.clocks, t)
}

func (o *recordingOutput) Info(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.infos = append(o.infos, text)
}

func (o *recordingOutput) Warn(text, hint string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.warns = append(o.warns, text)
}

func (o *recordingOutput) Error(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errs = append(o.errs, err)
}

func (o *recordingOutput) Help() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.helps++
}

func (o *recordingOutput) lastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs[len(o.errs)-1]
}
