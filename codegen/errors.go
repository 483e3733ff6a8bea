package codegen

import "fmt"

// EncodingError reports a failure composing one instruction: which
// emitter call failed, a human-readable reason, and optionally the
// lower-level error that caused it (an out-of-range immediate, a pass
// error from Context.Enter, and so on).
type EncodingError struct {
	Instruction string
	Message     string
	Wrapped     error
}

func (e *EncodingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Instruction, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Instruction, e.Message)
}

func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

// NewEncodingError builds an EncodingError with no wrapped cause.
func NewEncodingError(instruction, message string) *EncodingError {
	return &EncodingError{Instruction: instruction, Message: message}
}

// WrapEncodingError builds an EncodingError wrapping a lower-level cause.
func WrapEncodingError(instruction, message string, wrapped error) *EncodingError {
	return &EncodingError{Instruction: instruction, Message: message, Wrapped: wrapped}
}
