package ports

// Emitter receives the debug messages produced while evaluating a run.
// Implementations either print them immediately or buffer them for a
// structured dump when the process exits.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit records a message regardless of output mode.
	Emit(kind, body string)

	// EmitJSON records a message only when the emitter is in JSON mode.
	// Extra machine-readable fields go here so plain stderr output stays terse.
	EmitJSON(kind, body string)

	// Flush writes any buffered output. Must be called once, last.
	Flush() error
}
