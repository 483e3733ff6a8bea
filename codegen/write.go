package codegen

import "github.com/yonder-tools/geckoasm/gecko"

func (e *Emitter) composeWrite(sub gecko.SubType, usePointer, addrIsStack bool, addrOffset uint32) uint32 {
	header := uint32(gecko.FamilyWrite) | uint32(sub) | (addrOffset & 0x00FFFFFF)
	if usePointer {
		header |= uint32(gecko.FlagUsePointer)
	}
	if addrIsStack {
		header |= uint32(gecko.FlagAddrIsStack)
	}
	return header
}

// Write8 writes the low byte of value to addrOffset (relative to the
// active base address or pointer register).
func (e *Emitter) Write8(usePointer, addrIsStack bool, addrOffset uint32, value uint8) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Write8", "pass error", err)
	}
	header := e.composeWrite(gecko.SubWrite8, usePointer, addrIsStack, addrOffset)
	return e.put(emit, header, uint32(value))
}

// Write16 writes the low halfword of value to addrOffset.
func (e *Emitter) Write16(usePointer, addrIsStack bool, addrOffset uint32, value uint16) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Write16", "pass error", err)
	}
	header := e.composeWrite(gecko.SubWrite16, usePointer, addrIsStack, addrOffset)
	return e.put(emit, header, uint32(value))
}

// Write32 writes value to addrOffset.
func (e *Emitter) Write32(usePointer, addrIsStack bool, addrOffset uint32, value uint32) error {
	emit, err := e.enter()
	if err != nil {
		return WrapEncodingError("Write32", "pass error", err)
	}
	header := e.composeWrite(gecko.SubWrite32, usePointer, addrIsStack, addrOffset)
	return e.put(emit, header, value)
}

// WriteString writes data (already zero-padded by the caller to an
// 8-byte multiple via gecko.PadBytes) starting at addrOffset. The first
// line carries the byte count; the padded payload follows as one or more
// additional lines through the sink's string-payload grouping.
func (e *Emitter) WriteString(usePointer, addrIsStack bool, addrOffset uint32, data []byte) error {
	lines := uint32(1 + len(data)/8)
	emit, err := e.enterLines(lines)
	if err != nil {
		return WrapEncodingError("WriteString", "pass error", err)
	}
	header := e.composeWrite(gecko.SubWriteStr, usePointer, addrIsStack, addrOffset)
	if err := e.put(emit, header, uint32(len(data))); err != nil {
		return err
	}
	if !emit {
		return nil
	}
	return e.sink.PrintStringPayload(data)
}

// WriteSerial performs a repeated write: value is written to addrOffset,
// then addressIncrement and valueIncrement are applied and the write
// repeats count times total (count==0 behaves as count==1, matching
// spec.md's resolution of the serial-write count ambiguity). This is a
// two-line instruction: the first carries the base address and initial
// value, the second carries the repeat/increment parameters.
func (e *Emitter) WriteSerial(usePointer, addrIsStack bool, addrOffset uint32, dataType gecko.SerialDataType, value uint32, count uint16, addressIncrement uint16, valueIncrement uint16) error {
	// The guard is entered once for both lines, matching the C source's
	// __G_WriteSerial__ (see DESIGN.md's note on this quirk).
	emit, err := e.enterLines(2)
	if err != nil {
		return WrapEncodingError("WriteSerial", "pass error", err)
	}

	header1 := e.composeWrite(gecko.SubWriteSerl, usePointer, addrIsStack, addrOffset)
	if err := e.put(emit, header1, value); err != nil {
		return err
	}

	effectiveCount := uint32(count)
	if effectiveCount == 0 {
		effectiveCount = 1
	}
	repeatField := (effectiveCount - 1) & 0xFFF
	header2 := uint32(addressIncrement) | uint32(dataType) | (repeatField << 16)
	payload2 := uint32(valueIncrement)
	return e.put(emit, header2, payload2)
}
