package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/engine"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// clearScreen homes the cursor and clears a terminal.
const clearScreen = "\033[H\033[2J"

// consolePublisher renders engine output with a validator.Reporter.
type consolePublisher struct {
	out      io.Writer
	format   validator.Format
	reporter *validator.Reporter

	// muted drops every message, e.g. while a run only primes the store.
	muted bool
	// clearTerminal clears the screen on Clear.
	clearTerminal bool

	err error
}

var _ engine.Publisher = (*consolePublisher)(nil)

func newConsolePublisher(out io.Writer, asJSON, showClean bool) *consolePublisher {
	format := validator.FormatText
	if asJSON {
		format = validator.FormatJSON
	}
	return &consolePublisher{
		out:      out,
		format:   format,
		reporter: validator.NewReporter(out, format, validator.WithClean(showClean)),
	}
}

func (p *consolePublisher) Clear() {
	if p.muted || !p.clearTerminal {
		return
	}
	fmt.Fprint(p.out, clearScreen)
}

func (p *consolePublisher) Publish(results []validator.Result) {
	if p.muted {
		return
	}
	if err := p.reporter.Report(results); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *consolePublisher) NoIcons() {
	if p.muted {
		return
	}
	if p.format == validator.FormatJSON {
		p.Publish(nil)
		return
	}
	fmt.Fprintln(p.out, "No icons found on this page.")
}

// streamMessage is one line of the serve protocol.
type streamMessage struct {
	Type    string             `json:"type"`
	Summary *validator.Summary `json:"summary,omitempty"`
	Icons   []validator.Result `json:"icons,omitempty"`
}

// streamPublisher writes each display message as a JSON line and calls
// commit after every published result set.
type streamPublisher struct {
	enc    *json.Encoder
	commit func() error
	err    error
}

var _ engine.Publisher = (*streamPublisher)(nil)

func newStreamPublisher(out io.Writer, commit func() error) *streamPublisher {
	return &streamPublisher{enc: json.NewEncoder(out), commit: commit}
}

func (p *streamPublisher) send(msg streamMessage) {
	if err := p.enc.Encode(msg); err != nil && p.err == nil {
		p.err = errors.Wrap(err, "writing message")
	}
}

func (p *streamPublisher) done() {
	if p.commit == nil {
		return
	}
	if err := p.commit(); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *streamPublisher) Clear() {
	p.send(streamMessage{Type: "clear"})
}

func (p *streamPublisher) Publish(results []validator.Result) {
	sum := validator.Summarize(results)
	if results == nil {
		results = []validator.Result{}
	}
	p.send(streamMessage{Type: "results", Summary: &sum, Icons: results})
	p.done()
}

func (p *streamPublisher) NoIcons() {
	p.send(streamMessage{Type: "no_icons"})
	p.done()
}
