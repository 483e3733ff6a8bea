package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// composeBAorPO applies the C source's __G_BAOrPO__ flag rules: the Write
// subtypes never accumulate (OffsetAddTo is stripped), an absent register
// falls back to GR0 and drops OffsetGeckoReg along with it, UsePointer
// forces OffsetPtrOrBaseAddr on, and the stack-relative flag is always
// stripped regardless of what the caller asked for — BAorPO addressing is
// never stack-relative in the real format.
func (e *Emitter) composeBAorPO(sub gecko.SubType, addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) (uint32, uint32) {
	flags &^= gecko.FlagAddrIsStack

	switch sub {
	case gecko.SubBAWrite, gecko.SubPOWrite:
		offsetFlags &^= gecko.OffsetAddTo
	}

	if register == gecko.GRNone {
		register = gecko.GR0
		offsetFlags &^= gecko.OffsetGeckoReg
	}

	if flags&gecko.FlagUsePointer != 0 {
		offsetFlags |= gecko.OffsetPtrOrBaseAddr
	}

	header := uint32(gecko.FamilyBAorPO) | uint32(sub) | uint32(flags) | uint32(offsetFlags) | uint32(register)
	return header, addr
}

func (e *Emitter) baorpo(name string, sub gecko.SubType, addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header, payload := e.composeBAorPO(sub, addr, register, offsetFlags, flags)
	return e.put(emit, header, payload)
}

// BaseAddressRead sets the base address register to the value stored at
// addr, optionally offset by register's value.
func (e *Emitter) BaseAddressRead(addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("BaseAddressRead", gecko.SubBARead, addr, register, offsetFlags, flags)
}

// BaseAddressSet sets the base address register to value directly,
// optionally offset by register's value.
func (e *Emitter) BaseAddressSet(value uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("BaseAddressSet", gecko.SubBASet, value, register, offsetFlags, flags)
}

// BaseAddressWrite stores the current base address register's value to
// addr, optionally offset by register's value.
func (e *Emitter) BaseAddressWrite(addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("BaseAddressWrite", gecko.SubBAWrite, addr, register, offsetFlags, flags)
}

// BaseAddressSetFromLabel sets the base address register to label's
// normalized displacement from the current line, the same transform
// ControlFlow's Goto/Gosub apply, packed directly into the header rather
// than computed from a line-pointer table.
func (e *Emitter) BaseAddressSetFromLabel(label string) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("BaseAddressSetFromLabel", "pass error", err)
	}
	if !emit {
		return nil
	}
	disp, err := e.ctx.LabelDisplacement(label)
	if err != nil {
		return WrapEncodingError("BaseAddressSetFromLabel", "unresolved label", err)
	}
	header := uint32(gecko.FamilyBAorPO) | uint32(gecko.SubBASetCode) | (uint32(disp) & 0xFFFF)
	return e.put(emit, header, 0)
}

// PointerRead sets the pointer register to the value stored at addr,
// optionally offset by register's value.
func (e *Emitter) PointerRead(addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("PointerRead", gecko.SubPORead, addr, register, offsetFlags, flags)
}

// PointerSet sets the pointer register to value directly, optionally
// offset by register's value.
func (e *Emitter) PointerSet(value uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("PointerSet", gecko.SubPOSet, value, register, offsetFlags, flags)
}

// PointerWrite stores the current pointer register's value to addr,
// optionally offset by register's value.
func (e *Emitter) PointerWrite(addr uint32, register gecko.Register, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.baorpo("PointerWrite", gecko.SubPOWrite, addr, register, offsetFlags, flags)
}

// PointerSetFromLabel sets the pointer register to label's normalized
// displacement from the current line.
func (e *Emitter) PointerSetFromLabel(label string) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("PointerSetFromLabel", "pass error", err)
	}
	if !emit {
		return nil
	}
	disp, err := e.ctx.LabelDisplacement(label)
	if err != nil {
		return WrapEncodingError("PointerSetFromLabel", "unresolved label", err)
	}
	header := uint32(gecko.FamilyBAorPO) | uint32(gecko.SubPOSetCode) | (uint32(disp) & 0xFFFF)
	return e.put(emit, header, 0)
}
