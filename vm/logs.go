package vm

import "github.com/evmlite/evmlite/u256"

// LogEntry is a single emitted event, one per LOGn opcode executed. The
// emitter address is taken from the block's coinbase field rather than an
// executing contract's address, since this interpreter has no
// call/contract-execution context to derive one from.
type LogEntry struct {
	Address Address
	Topics  []u256.Word
	Data    []byte
}

// logBuffer is an append-only, execution-ordered sequence of emitted log
// entries.
type logBuffer struct {
	entries []LogEntry
}

func (b *logBuffer) append(entry LogEntry) {
	b.entries = append(b.entries, entry)
}
