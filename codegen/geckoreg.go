package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// composeGRAccess implements __G_GR__'s flag rules, shared by GRSet,
// GRRead and GRWrite: the stack-relative flag and the Gecko-register
// offset flag are always stripped regardless of what the caller asked
// for, GRSet hardcodes its data width to 8 bits no matter what dataType
// is passed, non-Set accesses never accumulate (OffsetAddTo is
// stripped), an absent register falls back to GR0, and UsePointer forces
// OffsetPtrOrBaseAddr on.
func (e *Emitter) composeGRAccess(sub gecko.SubType, register gecko.Register, dataType gecko.RegDataType, offsetFlags gecko.OffsetFlags, flags gecko.Flags) uint32 {
	flags &^= gecko.FlagAddrIsStack
	offsetFlags &^= gecko.OffsetGeckoReg

	if sub == gecko.SubGRSet {
		dataType = gecko.RegData8
	} else {
		offsetFlags &^= gecko.OffsetAddTo
	}

	register = resolveGRNone(register, gecko.GR0)

	if flags&gecko.FlagUsePointer != 0 {
		offsetFlags |= gecko.OffsetPtrOrBaseAddr
	}

	return uint32(gecko.FamilyGR) | uint32(sub) | uint32(flags) | uint32(offsetFlags) | uint32(dataType) | uint32(register)
}

func (e *Emitter) grAccess(name string, sub gecko.SubType, register gecko.Register, dataType gecko.RegDataType, offsetFlags gecko.OffsetFlags, flags gecko.Flags, payload uint32) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header := e.composeGRAccess(sub, register, dataType, offsetFlags, flags)
	return e.put(emit, header, payload)
}

// GRSet loads register directly with value. A gecko.GRNone register
// resolves to GR0.
func (e *Emitter) GRSet(register gecko.Register, value uint32, offsetFlags gecko.OffsetFlags, flags gecko.Flags) error {
	return e.grAccess("GRSet", gecko.SubGRSet, register, gecko.RegData8, offsetFlags, flags, value)
}

// GRRead loads register with the value found at addrOffset, interpreted
// per dataType. A gecko.GRNone register resolves to GR0.
func (e *Emitter) GRRead(register gecko.Register, dataType gecko.RegDataType, offsetFlags gecko.OffsetFlags, flags gecko.Flags, addrOffset uint32) error {
	return e.grAccess("GRRead", gecko.SubGRRead, register, dataType, offsetFlags, flags, addrOffset)
}

// GRWrite stores register's value (interpreted per dataType) to
// addrOffset. A gecko.GRNone register resolves to GR0.
func (e *Emitter) GRWrite(register gecko.Register, dataType gecko.RegDataType, offsetFlags gecko.OffsetFlags, flags gecko.Flags, addrOffset uint32) error {
	return e.grAccess("GRWrite", gecko.SubGRWrite, register, dataType, offsetFlags, flags, addrOffset)
}

// composeGROperation implements __G_GROperation__, which is wholly
// separate from composeGRAccess: it resolves an absent register to GR0
// but otherwise touches no flags at all.
func (e *Emitter) composeGROperation(sub gecko.SubType, register gecko.Register, op gecko.RegisterOp, mode gecko.RegisterOpMode) uint32 {
	register = resolveGRNone(register, gecko.GR0)
	return uint32(gecko.FamilyGR) | uint32(sub) | uint32(register) | uint32(op) | uint32(mode)
}

// GRDirectOp applies op to register using value as the immediate
// operand, storing the result back in register. mode selects which
// side(s) of the operation dereference their operand. A gecko.GRNone
// register resolves to GR0.
func (e *Emitter) GRDirectOp(register gecko.Register, op gecko.RegisterOp, mode gecko.RegisterOpMode, value uint32) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("GRDirectOp", "pass error", err)
	}
	header := e.composeGROperation(gecko.SubGRDirectOp, register, op, mode)
	return e.put(emit, header, value)
}

// GROp applies op to dst and src per mode, storing the result in dst.
// Unlike GRDirectOp, src's value is a register, not an immediate, so it
// rides in the payload word rather than the header. A gecko.GRNone dst
// or src resolves to GR0.
func (e *Emitter) GROp(dst, src gecko.Register, op gecko.RegisterOp, mode gecko.RegisterOpMode) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("GROp", "pass error", err)
	}
	src = resolveGRNone(src, gecko.GR0)
	header := e.composeGROperation(gecko.SubGROp, dst, op, mode)
	return e.put(emit, header, uint32(src))
}

// resolveCopyAnchor implements __G_CopyMem__'s anchor-register
// substitution: GR15 always becomes GR14 first (freeing GR15 up as the
// implicit anchor), then an absent register or an explicit UsePointer
// request forces GR15.
func resolveCopyAnchor(register gecko.Register, usePointer bool) gecko.Register {
	absent := register == gecko.GRNone
	if register == gecko.GR15 {
		register = gecko.GR14
	}
	if absent || usePointer {
		register = gecko.GR15
	}
	return register
}

func (e *Emitter) composeCopyMem(sub gecko.SubType, grn, grk gecko.Register, cnt uint16, flags gecko.Flags) uint32 {
	flags &^= gecko.FlagAddrIsStack
	usePointer := flags&gecko.FlagUsePointer != 0

	switch sub {
	case gecko.SubMemcpyFromGR:
		grn = resolveGRNone(grn, gecko.GR0)
		grk = resolveCopyAnchor(grk, usePointer)
	case gecko.SubMemcpyToGR:
		grk = resolveGRNone(grk, gecko.GR0)
		grn = resolveCopyAnchor(grn, usePointer)
	}

	return uint32(gecko.FamilyGR) | uint32(sub) | uint32(flags) | uint32(cnt)<<8 | uint32(grn)<<4 | uint32(grk)
}

// MemcpyFromGR copies cnt bytes from the address held in grk (the
// "anchor" register; a gecko.GRNone grk resolves to GR15, as does
// UsePointer) to addr. grn, the plain destination-offset register,
// resolves an absent value to GR0.
func (e *Emitter) MemcpyFromGR(grn, grk gecko.Register, addr uint32, cnt uint16, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("MemcpyFromGR", "pass error", err)
	}
	header := e.composeCopyMem(gecko.SubMemcpyFromGR, grn, grk, cnt, flags)
	return e.put(emit, header, addr)
}

// MemcpyToGR copies cnt bytes from addr to the address held in grn (the
// anchor register; a gecko.GRNone grn resolves to GR15, as does
// UsePointer). grk, the plain source-offset register, resolves an
// absent value to GR0.
func (e *Emitter) MemcpyToGR(grn, grk gecko.Register, addr uint32, cnt uint16, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("MemcpyToGR", "pass error", err)
	}
	header := e.composeCopyMem(gecko.SubMemcpyToGR, grn, grk, cnt, flags)
	return e.put(emit, header, addr)
}
