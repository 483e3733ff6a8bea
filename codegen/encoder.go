// Package codegen implements the Encoder: one file per code-type family,
// each composing the header/payload word pair for its instructions and
// forwarding them to a sink.Sink. Every public method first calls
// Context.Enter, which gates output to the emit pass and enforces the
// active ABI's line cap; on the label and pointer passes a method runs
// its Enter call and returns nil without touching the sink at all.
package codegen

import (
	"github.com/yonder-tools/geckoasm/gecko"
	"github.com/yonder-tools/geckoasm/pass"
	"github.com/yonder-tools/geckoasm/sink"
)

// Emitter is the public API a Program (see the envelope package) calls
// into. It holds the sink lines are written to and the pass Context that
// gates when they're actually written.
type Emitter struct {
	sink sink.Sink
	ctx  *pass.Context
}

// NewEmitter builds an Emitter over s, gated by ctx.
func NewEmitter(s sink.Sink, ctx *pass.Context) *Emitter {
	return &Emitter{sink: s, ctx: ctx}
}

// Context exposes the underlying pass.Context so a Program can declare
// and define labels directly.
func (e *Emitter) Context() *pass.Context {
	return e.ctx
}

// enter is the one-line-instruction convenience wrapper around
// Context.Enter used by every family method that doesn't carry a line
// pointer.
func (e *Emitter) enter() (bool, error) {
	return e.ctx.Enter(1, false)
}

// enterLines is used by multi-line instructions (serial writes emit two
// lines per call; string/assembly payload instructions emit 1+N lines
// depending on payload length).
func (e *Emitter) enterLines(lines uint32) (bool, error) {
	return e.ctx.Enter(lines, false)
}

// enterPointer is used by instructions whose header carries the current
// line pointer (only meaningful under pass.ABICodeHandlerCompat).
func (e *Emitter) enterPointer() (bool, error) {
	return e.ctx.Enter(1, true)
}

// LinePointer returns the absolute memory address of the current line
// under the active ABI's line-pointer table, mirroring the C source's
// standalone G_GetLinePointer query. A program can feed the result into
// any instruction's address operand, e.g. to record a pointer to itself
// for later comparison. Only meaningful under pass.ABICodeHandlerCompat;
// returns 0 on the label and pointer-collection passes, and on every pass
// under an ABI without line pointers.
func (e *Emitter) LinePointer() (uint32, error) {
	emit, err := e.enterPointer()
	if err != nil {
		return 0, WrapEncodingError("LinePointer", "pass error", err)
	}
	if !emit || !e.ctx.ABI.UseLinePointers {
		return 0, nil
	}
	return e.ctx.LinePointer(), nil
}

// resolveGRNone substitutes gecko.GRNone with fallback, matching the C
// source's per-family ternary (GeckoReg instructions default an absent
// plain register to GR0; the memcpy anchor register and SpecialIf
// register compares resolve it to GR15 through their own helpers).
func resolveGRNone(r, fallback gecko.Register) gecko.Register {
	if r == gecko.GRNone {
		return fallback
	}
	return r
}

// put writes header/payload through the sink if emit reports the current
// pass is the emit pass.
func (e *Emitter) put(emit bool, header, payload uint32) error {
	if !emit {
		return nil
	}
	return e.sink.PrintCodeLine(header, payload)
}
