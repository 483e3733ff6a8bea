// Package sink implements the Output Sink: the low-level byte/word writer
// every envelope and the codegen Emitter write through. A Sink has no
// knowledge of code-type semantics; it only knows how to render a
// header/payload pair and two kinds of bulk payload (string bytes, raw
// assembly words) in either text or binary form.
package sink

// Sink is implemented by the text and binary output modes. Every method
// writes big-endian, matching the wire format of the patch codes
// themselves.
type Sink interface {
	// PrintCodeLine writes one header/payload word pair.
	PrintCodeLine(header, payload uint32) error

	// PrintStringPayload writes a string's raw bytes, padded by the
	// caller to an 8-byte multiple, in text mode as 4-byte groups, 8 bytes
	// per line.
	PrintStringPayload(data []byte) error

	// PrintAsmPayload writes a sequence of raw 32-bit words, padded by
	// the caller to an even count, grouped 2-per-line in text mode.
	PrintAsmPayload(words []uint32) error

	// Close flushes and releases any underlying resource. Callers that
	// constructed the Sink over an os.File should still close that file
	// themselves if they opened it.
	Close() error
}
