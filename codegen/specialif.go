package codegen

import "github.com/yonder-tools/geckoasm/gecko"

// resolveSpecialIfAnchor mirrors resolveCopyAnchor's GR15/GR14 swap
// followed by an absent-or-UsePointer forcing to GR15, applied
// independently to each side of a register compare.
func resolveSpecialIfAnchor(register gecko.Register, usePointer bool) gecko.Register {
	absent := register == gecko.GRNone
	if register == gecko.GR15 {
		register = gecko.GR14
	}
	if absent || usePointer {
		register = gecko.GR15
	}
	return register
}

// composeSpecialIfRegister implements __G_SpecIf__. When both grn and grk
// are given, the compare is register-to-register rather than
// register-to-address: addr is discarded and UsePointer/addr-is-stack are
// stripped before either register is resolved. Every register, whether
// reg-reg or reg-address, then goes through the unconditional GR15->GR14
// swap followed by the absent-or-UsePointer forcing to GR15.
func (e *Emitter) composeSpecialIfRegister(sub gecko.SubType, grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) (uint32, uint32) {
	if grn != gecko.GRNone && grk != gecko.GRNone {
		addr = 0
		flags &^= gecko.FlagUsePointer | gecko.FlagAddrIsStack
	}
	usePointer := flags&gecko.FlagUsePointer != 0
	grn = resolveSpecialIfAnchor(grn, usePointer)
	grk = resolveSpecialIfAnchor(grk, usePointer)

	field := addr
	if endif {
		field++
	}
	header := uint32(gecko.FamilySpecIf) | uint32(sub) | uint32(flags) | (field & 0x00FFFFFF)
	payload := uint32(grk)<<28 | uint32(grn)<<24 | uint32(mask)
	return header, payload
}

func (e *Emitter) ifGR16(name string, sub gecko.SubType, grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header, payload := e.composeSpecialIfRegister(sub, grn, grk, addr, endif, mask, flags)
	return e.put(emit, header, payload)
}

// IfGR16Equal begins an if block comparing grn's low halfword (masked by
// mask) against either grk's low halfword, when grk is also given, or the
// memory value at addr otherwise.
func (e *Emitter) IfGR16Equal(grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) error {
	return e.ifGR16("IfGR16Equal", gecko.SubIfGR16Equ, grn, grk, addr, endif, mask, flags)
}

// IfGR16NotEqual is the inequality variant of IfGR16Equal.
func (e *Emitter) IfGR16NotEqual(grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) error {
	return e.ifGR16("IfGR16NotEqual", gecko.SubIfGR16Neq, grn, grk, addr, endif, mask, flags)
}

// IfGR16GreaterThan is the greater-than variant of IfGR16Equal.
func (e *Emitter) IfGR16GreaterThan(grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) error {
	return e.ifGR16("IfGR16GreaterThan", gecko.SubIfGR16Gtr, grn, grk, addr, endif, mask, flags)
}

// IfGR16LessThan is the less-than variant of IfGR16Equal.
func (e *Emitter) IfGR16LessThan(grn, grk gecko.Register, addr uint32, endif bool, mask uint16, flags gecko.Flags) error {
	return e.ifGR16("IfGR16LessThan", gecko.SubIfGR16Lss, grn, grk, addr, endif, mask, flags)
}

func (e *Emitter) composeIfCounter(sub gecko.SubType, counter uint16, flags gecko.CounterFlags) uint32 {
	return uint32(gecko.FamilySpecIf) | uint32(sub) | uint32(flags) | uint32(counter)<<4
}

func (e *Emitter) ifCounter16(name string, sub gecko.SubType, counter, max, mask uint16, flags gecko.CounterFlags) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header := e.composeIfCounter(sub, counter, flags)
	payload := uint32(mask)<<16 | uint32(max)
	return e.put(emit, header, payload)
}

// IfCounter16Equal begins an if block keyed on the code handler's
// built-in loop counter, masked by mask, compared against max.
func (e *Emitter) IfCounter16Equal(counter, max, mask uint16, flags gecko.CounterFlags) error {
	return e.ifCounter16("IfCounter16Equal", gecko.SubIfCntr16Equ, counter, max, mask, flags)
}

// IfCounter16NotEqual is the inequality variant of IfCounter16Equal.
func (e *Emitter) IfCounter16NotEqual(counter, max, mask uint16, flags gecko.CounterFlags) error {
	return e.ifCounter16("IfCounter16NotEqual", gecko.SubIfCntr16Neq, counter, max, mask, flags)
}

// IfCounter16GreaterThan is the greater-than variant of
// IfCounter16Equal.
func (e *Emitter) IfCounter16GreaterThan(counter, max, mask uint16, flags gecko.CounterFlags) error {
	return e.ifCounter16("IfCounter16GreaterThan", gecko.SubIfCntr16Gtr, counter, max, mask, flags)
}

// IfCounter16LessThan is the less-than variant of IfCounter16Equal.
func (e *Emitter) IfCounter16LessThan(counter, max, mask uint16, flags gecko.CounterFlags) error {
	return e.ifCounter16("IfCounter16LessThan", gecko.SubIfCntr16Lss, counter, max, mask, flags)
}
