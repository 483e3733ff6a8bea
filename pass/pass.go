// Package pass implements the Resolver / Pass Controller: the multi-pass
// loop a single user emitter function is run through so that forward
// label references and line-pointer lookups resolve correctly before any
// byte reaches a sink.
package pass

import (
	"errors"
	"fmt"
)

// ErrLineCapExceeded is returned from Enter on the emit pass once the
// number of emitted lines would exceed the active ABI's LineCap. Promoted
// to a hard error rather than the silent truncation the C source performs
// (see DESIGN.md).
var ErrLineCapExceeded = errors.New("pass: line cap exceeded")

// ABI describes the addressing and pass-count contract of the code
// handler a program is being assembled for.
type ABI struct {
	Name             string
	CodeHandlerBase  uint32
	CodeHandlerSize  uint32
	LineCap          uint32
	UseLinePointers  bool
}

// ABIPrimitive targets a bare Gecko interpreter with no code-handler
// relocation table: two passes (label collection, then emit), no line
// pointers.
var ABIPrimitive = ABI{
	Name:            "primitive",
	CodeHandlerBase: 0,
	CodeHandlerSize: 0,
	LineCap:         231,
	UseLinePointers: false,
}

// ABICodeHandlerCompat targets the standard GameCube/Wii code handler
// memory layout: three passes (labels, then line pointers, then emit).
var ABICodeHandlerCompat = ABI{
	Name:            "codehandler",
	CodeHandlerBase: 0x80001800,
	CodeHandlerSize: 2880,
	LineCap:         231,
	UseLinePointers: true,
}

// stage identifies which of Run's iterations is currently executing.
type stage int

const (
	stageLabels stage = iota
	stagePointers
	stageEmit
)

// Context is threaded through a single call to Run. It tracks the current
// pass, the running line and line-pointer counters, and the label table,
// and is what every codegen.Emitter method calls Enter on before composing
// a line.
type Context struct {
	ABI ABI

	stage          stage
	lineCounter    uint32
	pointerCounter uint32
	labels         map[string]*labelEntry
}

type labelEntry struct {
	declared bool
	defined  bool
	line     uint32
}

// NewContext creates a Context for the given ABI.
func NewContext(abi ABI) *Context {
	return &Context{
		ABI:    abi,
		labels: make(map[string]*labelEntry),
	}
}

// EmitFunc is the user-supplied program: a single function that calls
// codegen.Emitter methods and pass.Label/pointer helpers in program order.
// Run invokes it once per pass.
type EmitFunc func(ctx *Context) error

// Run drives ctx through every pass an EmitFunc must go through for its
// labels and line pointers to resolve, resetting ctx's counters between
// passes. The final pass is always the emit pass; f's emitter calls only
// produce visible output on that pass (guarded by Context.Enter).
func Run(ctx *Context, f EmitFunc) error {
	ctx.resetCounters()
	ctx.stage = stageLabels
	if err := f(ctx); err != nil {
		return fmt.Errorf("label pass: %w", err)
	}

	if ctx.ABI.UseLinePointers {
		ctx.resetCounters()
		ctx.stage = stagePointers
		if err := f(ctx); err != nil {
			return fmt.Errorf("pointer pass: %w", err)
		}
	}

	ctx.resetCounters()
	ctx.stage = stageEmit
	if err := f(ctx); err != nil {
		return fmt.Errorf("emit pass: %w", err)
	}

	return nil
}

func (c *Context) resetCounters() {
	c.lineCounter = 0
	c.pointerCounter = 0
}

// Enter is the per-call guard every codegen.Emitter method invokes before
// composing a header/payload. It advances the line counter by lines (most
// instructions occupy one line; a few, like serial writes, occupy two),
// advances the pointer counter by one if the instruction carries a line
// pointer, and reports whether the caller is on the emit pass and should
// therefore actually produce output. On the emit pass it also enforces
// the ABI's LineCap.
func (c *Context) Enter(lines uint32, hasPointer bool) (emit bool, err error) {
	if c.stage == stageEmit && c.lineCounter+lines > c.ABI.LineCap {
		return false, fmt.Errorf("%w: line %d exceeds cap %d", ErrLineCapExceeded, c.lineCounter+lines, c.ABI.LineCap)
	}

	line := c.lineCounter
	c.lineCounter += lines

	if hasPointer {
		c.pointerCounter++
	}
	_ = line

	return c.stage == stageEmit, nil
}

// Pass reports which pass ctx is currently on; codegen does not need this
// since Enter already gates on it, but a program or test can use it to act
// on one pass only.
func (c *Context) Pass() string {
	switch c.stage {
	case stageLabels:
		return "labels"
	case stagePointers:
		return "pointers"
	default:
		return "emit"
	}
}

// LineCounter returns the number of lines emitted so far on the current
// pass.
func (c *Context) LineCounter() uint32 {
	return c.lineCounter
}
