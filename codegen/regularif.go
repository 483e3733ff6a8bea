package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// composeRegularIf packs the header's embedded address field as addr+endif
// (integer addition, not OR) before masking to 24 bits and combining with
// the flag bits, matching __G_If__'s (addr+endif) arithmetic in the C
// source: passing endif=true nudges the comparison to also close the if
// block it opens, the single-line "if-and-endif" form.
func (e *Emitter) composeRegularIf(sub gecko.SubType, usePointer, addrIsStack bool, addr uint32, endif bool) uint32 {
	field := addr
	if endif {
		field++
	}
	header := uint32(gecko.FamilyRegIf) | uint32(sub) | (field & 0x00FFFFFF)
	if usePointer {
		header |= uint32(gecko.FlagUsePointer)
	}
	if addrIsStack {
		header |= uint32(gecko.FlagAddrIsStack)
	}
	return header
}

func (e *Emitter) regularIf(name string, sub gecko.SubType, usePointer, addrIsStack bool, addr uint32, endif bool, value uint32) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header := e.composeRegularIf(sub, usePointer, addrIsStack, addr, endif)
	return e.put(emit, header, value)
}

// If32Equal begins an if block: the lines that follow run only while the
// 32-bit value at addr equals value. Close the block with EndifElse, or
// pass endif=true to both compare and close in the same line.
func (e *Emitter) If32Equal(usePointer, addrIsStack bool, addr uint32, endif bool, value uint32) error {
	return e.regularIf("If32Equal", gecko.SubIf32Equ, usePointer, addrIsStack, addr, endif, value)
}

// If32NotEqual is the 32-bit inequality variant of If32Equal.
func (e *Emitter) If32NotEqual(usePointer, addrIsStack bool, addr uint32, endif bool, value uint32) error {
	return e.regularIf("If32NotEqual", gecko.SubIf32Neq, usePointer, addrIsStack, addr, endif, value)
}

// If32GreaterThan runs its block while the 32-bit value at addr is
// greater than value.
func (e *Emitter) If32GreaterThan(usePointer, addrIsStack bool, addr uint32, endif bool, value uint32) error {
	return e.regularIf("If32GreaterThan", gecko.SubIf32Gtr, usePointer, addrIsStack, addr, endif, value)
}

// If32LessThan is the less-than variant of If32GreaterThan.
func (e *Emitter) If32LessThan(usePointer, addrIsStack bool, addr uint32, endif bool, value uint32) error {
	return e.regularIf("If32LessThan", gecko.SubIf32Lss, usePointer, addrIsStack, addr, endif, value)
}

// If16Equal is the 16-bit (masked-compare) variant of If32Equal. mask is
// ANDed against the memory value before the comparison, matching the
// format's packed compare word.
func (e *Emitter) If16Equal(usePointer, addrIsStack bool, addr uint32, endif bool, mask, value uint16) error {
	return e.regularIf("If16Equal", gecko.SubIf16Equ, usePointer, addrIsStack, addr, endif, uint32(mask)<<16|uint32(value))
}

// If16NotEqual is the 16-bit inequality variant.
func (e *Emitter) If16NotEqual(usePointer, addrIsStack bool, addr uint32, endif bool, mask, value uint16) error {
	return e.regularIf("If16NotEqual", gecko.SubIf16Neq, usePointer, addrIsStack, addr, endif, uint32(mask)<<16|uint32(value))
}

// If16GreaterThan is the 16-bit greater-than variant (unsigned compare,
// after masking).
func (e *Emitter) If16GreaterThan(usePointer, addrIsStack bool, addr uint32, endif bool, mask, value uint16) error {
	return e.regularIf("If16GreaterThan", gecko.SubIf16Gtr, usePointer, addrIsStack, addr, endif, uint32(mask)<<16|uint32(value))
}

// If16LessThan is the 16-bit less-than variant.
func (e *Emitter) If16LessThan(usePointer, addrIsStack bool, addr uint32, endif bool, mask, value uint16) error {
	return e.regularIf("If16LessThan", gecko.SubIf16Lss, usePointer, addrIsStack, addr, endif, uint32(mask)<<16|uint32(value))
}

// If8Equal is the 8-bit variant, synthesized onto If16Equal's mask/addr-1
// form exactly as the format's "special extensions" define it: there is no
// dedicated 8-bit subtype, so the byte compare rides the 16-bit path with
// its low byte masked out and its address backed up by one.
func (e *Emitter) If8Equal(usePointer, addrIsStack bool, addr uint32, endif bool, value uint8) error {
	return e.If16Equal(usePointer, addrIsStack, addr-1, endif, 0xFF00, uint16(value)<<8)
}

// If8NotEqual is the 8-bit inequality variant of If8Equal.
func (e *Emitter) If8NotEqual(usePointer, addrIsStack bool, addr uint32, endif bool, value uint8) error {
	return e.If16NotEqual(usePointer, addrIsStack, addr-1, endif, 0xFF00, uint16(value)<<8)
}

// If8GreaterThan is the 8-bit greater-than variant of If8Equal.
func (e *Emitter) If8GreaterThan(usePointer, addrIsStack bool, addr uint32, endif bool, value uint8) error {
	return e.If16GreaterThan(usePointer, addrIsStack, addr-1, endif, 0xFF00, uint16(value)<<8)
}

// If8LessThan is the 8-bit less-than variant of If8Equal.
func (e *Emitter) If8LessThan(usePointer, addrIsStack bool, addr uint32, endif bool, value uint8) error {
	return e.If16LessThan(usePointer, addrIsStack, addr-1, endif, 0xFF00, uint16(value)<<8)
}
