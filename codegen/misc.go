package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// AsmExecute runs words as raw PowerPC instructions inline, once, every
// time the containing block runs. words is padded to an even count with
// a trailing NOP (gecko.PadWords) before being measured and written.
func (e *Emitter) AsmExecute(words []uint32) error {
	padded := gecko.PadWords(words)
	lines := uint32(1 + len(padded)/2)
	emit, err := e.enterLines(lines)
	if err != nil {
		return WrapEncodingError("AsmExecute", "pass error", err)
	}
	header := uint32(gecko.FamilyMisc) | uint32(gecko.SubAsmExec)
	if err := e.put(emit, header, uint32(len(padded))); err != nil {
		return err
	}
	if !emit {
		return nil
	}
	return e.sink.PrintAsmPayload(padded)
}

// AsmInsert patches words into memory starting at addr, once. Like
// AsmExecute, this writes raw instruction words rather than executing
// them as part of the code handler's own flow.
func (e *Emitter) AsmInsert(addr uint32, words []uint32) error {
	padded := gecko.PadWords(words)
	lines := uint32(1 + len(padded)/2)
	emit, err := e.enterLines(lines)
	if err != nil {
		return WrapEncodingError("AsmInsert", "pass error", err)
	}
	header := uint32(gecko.FamilyMisc) | uint32(gecko.SubAsmInst)
	if err := e.put(emit, header, uint32(len(padded))); err != nil {
		return err
	}
	if !emit {
		return nil
	}
	if err := e.put(emit, addr, 0); err != nil {
		return err
	}
	return e.sink.PrintAsmPayload(padded)
}

// CreateBranch writes a single branch instruction at addr, branching to
// branch. Unlike AsmInsert, this is a plain one-line instruction with no
// attached asm payload: the code handler itself computes the relative
// displacement from the two absolute addresses.
func (e *Emitter) CreateBranch(addr, branch uint32, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("CreateBranch", "pass error", err)
	}
	header := uint32(gecko.FamilyMisc) | uint32(gecko.SubAsmBrch) | uint32(flags) | (addr & 0x00FFFFFF)
	return e.put(emit, header, branch)
}

// Switch toggles whether the lines that follow, up to the next Switch at
// the same nesting level, are active.
func (e *Emitter) Switch() error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Switch", "pass error", err)
	}
	header := uint32(gecko.FamilyMisc) | uint32(gecko.SubSwitch)
	return e.put(emit, header, 0)
}

func (e *Emitter) rangeCheck(name string, startAddr, endAddr uint16, endif uint32, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	flags &^= gecko.FlagAddrIsStack
	header := uint32(gecko.FamilyMisc) | uint32(gecko.SubRngChck) | uint32(flags) | endif
	payload := uint32(startAddr)<<16 | uint32(endAddr)
	return e.put(emit, header, payload)
}

// RangeCheck asserts that the active base address falls within
// [startAddr, endAddr); the rest of the code list aborts if it doesn't.
func (e *Emitter) RangeCheck(startAddr, endAddr uint16, flags gecko.Flags) error {
	return e.rangeCheck("RangeCheck", startAddr, endAddr, 0, flags)
}

// EndifRangeCheck is RangeCheck's variant that also closes the innermost
// open if block in the same line.
func (e *Emitter) EndifRangeCheck(startAddr, endAddr uint16, flags gecko.Flags) error {
	return e.rangeCheck("EndifRangeCheck", startAddr, endAddr, 1, flags)
}
