package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// composeControlFlow packs the shared 16-bit header field: either a raw
// repeat count (RepeatSet; offs is always 1 for every other ControlFlow
// instruction, which normalizes to a zero contribution here) or a
// normalized Goto/Gosub displacement. The two never land in that field
// at once, since cnt is only nonzero for RepeatSet and offs is only ever
// something other than 1 for Goto/Gosub.
func (e *Emitter) composeControlFlow(sub gecko.SubType, status gecko.ExecStatus, cnt uint16, offs int32) uint32 {
	if status == gecko.ExecUnset {
		status = gecko.ExecTrue
	}
	if offs == 0 {
		offs = 1
	} else if offs < 0 {
		offs += 2
	}
	field := (uint32(offs-1) & 0xFFFF) | uint32(cnt)
	return uint32(gecko.FamilyCtrlFlow) | uint32(sub) | uint32(status) | field
}

func resolveBlockNone(b, fallback gecko.Block) gecko.Block {
	if b == gecko.GBNone {
		return fallback
	}
	return b
}

// RepeatSet marks the start of a repeat block: block's implicit counter
// is loaded with count, and the lines up to the matching RepeatExec run
// once per iteration. A gecko.GBNone block resolves to GB0.
func (e *Emitter) RepeatSet(block gecko.Block, count uint16) error {
	block = resolveBlockNone(block, gecko.GB0)
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("RepeatSet", "pass error", err)
	}
	header := e.composeControlFlow(gecko.SubRepeatSet, gecko.ExecUnset, count, 1)
	return e.put(emit, header, uint32(block))
}

// RepeatExec closes a repeat block opened by RepeatSet: block's counter
// is decremented, and execution jumps back to just after the matching
// RepeatSet while it is still nonzero. A gecko.GBNone block resolves to
// GB0.
func (e *Emitter) RepeatExec(block gecko.Block) error {
	block = resolveBlockNone(block, gecko.GB0)
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("RepeatExec", "pass error", err)
	}
	header := e.composeControlFlow(gecko.SubRepeatExec, gecko.ExecUnset, 0, 1)
	return e.put(emit, header, uint32(block))
}

// Return exits the subroutine entered via Gosub, conditioned on status.
// A gecko.GBNone block resolves to GB0.
func (e *Emitter) Return(status gecko.ExecStatus, block gecko.Block) error {
	block = resolveBlockNone(block, gecko.GB0)
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Return", "pass error", err)
	}
	header := e.composeControlFlow(gecko.SubReturn, status, 0, 1)
	return e.put(emit, header, uint32(block))
}

// Goto jumps to label, conditioned on status. The label's line only
// needs to be resolved on the emit pass — by then every DefineLabel call
// in the program has already run once during the label pass, so forward
// references resolve correctly regardless of where Goto appears relative
// to the label in program order. Goto has no block operand; the C
// source hardcodes it to GB0.
func (e *Emitter) Goto(status gecko.ExecStatus, label string) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Goto", "pass error", err)
	}
	if !emit {
		return nil
	}
	disp, err := e.ctx.LabelDisplacement(label)
	if err != nil {
		return WrapEncodingError("Goto", "unresolved label", err)
	}
	header := e.composeControlFlow(gecko.SubGoto, status, 0, disp)
	return e.put(emit, header, uint32(gecko.GB0))
}

// Gosub jumps to label and remembers the return line, conditioned on
// status. block, if not gecko.GBNone, counts down like RepeatSet's
// counter each time the subroutine is entered, for bounded recursion.
func (e *Emitter) Gosub(status gecko.ExecStatus, label string, block gecko.Block) error {
	block = resolveBlockNone(block, gecko.GB0)
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Gosub", "pass error", err)
	}
	if !emit {
		return nil
	}
	disp, err := e.ctx.LabelDisplacement(label)
	if err != nil {
		return WrapEncodingError("Gosub", "unresolved label", err)
	}
	header := e.composeControlFlow(gecko.SubGosub, status, 0, disp)
	return e.put(emit, header, uint32(block))
}
