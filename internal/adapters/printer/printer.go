// Package printer implements the debug emitter: immediate "kind:body" lines
// on stderr, or a single JSON blob on stdout buffered until the process is
// done. JSON mode exists so scripts can pick fields out of the debug output
// without scraping stderr.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.trai.ch/evry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mode selects how emitted messages reach the user.
type Mode string

const (
	// ModeStderr prints each message immediately as a "kind:body" line.
	ModeStderr Mode = "stderr"
	// ModeJSON buffers messages and flushes them as one JSON array.
	ModeJSON Mode = "json"
)

// Message is one emitted debug message. The field names are part of the
// JSON output contract.
type Message struct {
	Kind string `json:"type"`
	Body string `json:"body"`
}

// Printer implements ports.Emitter.
type Printer struct {
	mode     Mode
	out      io.Writer
	errOut   io.Writer
	messages []Message
}

// New creates a Printer in the given mode writing to stdout/stderr.
func New(mode Mode) *Printer {
	return NewWithWriters(mode, os.Stdout, os.Stderr)
}

// NewWithWriters creates a Printer with explicit writers. Used by tests.
func NewWithWriters(mode Mode, out, errOut io.Writer) *Printer {
	return &Printer{mode: mode, out: out, errOut: errOut}
}

// Emit records a message regardless of mode.
func (p *Printer) Emit(kind, body string) {
	switch p.mode {
	case ModeJSON:
		p.messages = append(p.messages, Message{Kind: kind, Body: body})
	default:
		fmt.Fprintf(p.errOut, "%s:%s\n", kind, body)
	}
}

// EmitJSON records a message only in JSON mode, for machine-readable fields
// that would be noise on stderr.
func (p *Printer) EmitJSON(kind, body string) {
	if p.mode == ModeJSON {
		p.messages = append(p.messages, Message{Kind: kind, Body: body})
	}
}

// Flush writes the buffered JSON array. A no-op on stderr mode, where every
// message was already printed.
func (p *Printer) Flush() error {
	if p.mode != ModeJSON {
		return nil
	}

	payload := p.messages
	if payload == nil {
		payload = []Message{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize debug messages")
	}
	if _, err := fmt.Fprintln(p.out, string(data)); err != nil {
		return zerr.Wrap(err, "failed to write debug messages")
	}
	return nil
}

// Silent is a ports.Emitter that discards everything; used when debug
// output is off.
type Silent struct{}

// Emit discards the message.
func (Silent) Emit(_, _ string) {}

// EmitJSON discards the message.
func (Silent) EmitJSON(_, _ string) {}

// Flush does nothing.
func (Silent) Flush() error { return nil }

// Select picks the emitter implied by the resolved debug/JSON switches.
func Select(debug, jsonMode bool) ports.Emitter {
	switch {
	case jsonMode:
		return New(ModeJSON)
	case debug:
		return New(ModeStderr)
	default:
		return Silent{}
	}
}
