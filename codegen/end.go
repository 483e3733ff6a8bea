package codegen

import "github.com/yonder-tools/geckoasm/gecko"

func (e *Emitter) composeEnd(sub gecko.SubType, endifCount uint16, withElse bool) uint32 {
	header := uint32(gecko.FamilyEnd) | uint32(sub) | uint32(endifCount)
	if withElse {
		header |= 1 << 20
	}
	return header
}

func (e *Emitter) end(name string, sub gecko.SubType, endifCount uint16, withElse bool, ba, po uint16) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError(name, "pass error", err)
	}
	header := e.composeEnd(sub, endifCount, withElse)
	payload := uint32(ba)<<16 | uint32(po)
	return e.put(emit, header, payload)
}

// FullTerminator ends the entire code list: the base address and pointer
// registers are restored to ba and po (pass 0, 0 for no override) and no
// further lines run.
func (e *Emitter) FullTerminator(ba, po uint16) error {
	return e.end("FullTerminator", gecko.SubFullTerm, 0, false, ba, po)
}

// EndifElse closes count nested if blocks (RegularIf or SpecialIf),
// restoring the base address/pointer registers to ba and po (pass 0, 0
// for no override). When withElse is true, the innermost block gets an
// else branch: the lines between this instruction and the matching
// block's close run only when the if's condition was false.
func (e *Emitter) EndifElse(count uint16, withElse bool, ba, po uint16) error {
	return e.end("EndifElse", gecko.SubEndifElse, count, withElse, ba, po)
}
