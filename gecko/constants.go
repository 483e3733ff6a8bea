// Package gecko holds the bit-level constants for the patch code format:
// code-type families, subtypes, flags and sentinel values. Every codegen
// family file composes its header/payload words from these constants; this
// file is the single source of truth for bit positions referenced
// throughout the encoder.
package gecko

// Family is the 3-bit code-type tag carried in header bits 31:29. Values
// are pre-shifted into position, matching how the original C source ORs
// them directly into the header word.
type Family uint32

const (
	FamilyWrite    Family = 0
	FamilyRegIf    Family = 0x1 << 29
	FamilyBAorPO   Family = 0x2 << 29
	FamilyCtrlFlow Family = 0x3 << 29
	FamilyGR       Family = 0x4 << 29
	FamilySpecIf   Family = 0x5 << 29
	FamilyMisc     Family = 0x6 << 29
	FamilyEnd      Family = 0x7 << 29
)

// SubType is the family-specific subtype tag, pre-shifted into header bits
// 28:25 (4 bits wide; only the End family's end-of-code sentinel uses the
// top bit).
type SubType uint32

const (
	// Write family.
	SubWrite8    SubType = 0
	SubWrite16   SubType = 0x1 << 25
	SubWrite32   SubType = 0x2 << 25
	SubWriteStr  SubType = 0x3 << 25
	SubWriteSerl SubType = 0x4 << 25

	// RegularIf family.
	SubIf32Equ SubType = 0
	SubIf32Neq SubType = 0x1 << 25
	SubIf32Gtr SubType = 0x2 << 25
	SubIf32Lss SubType = 0x3 << 25
	SubIf16Equ SubType = 0x4 << 25
	SubIf16Neq SubType = 0x5 << 25
	SubIf16Gtr SubType = 0x6 << 25
	SubIf16Lss SubType = 0x7 << 25

	// BAorPO family.
	SubBARead    SubType = 0
	SubBASet     SubType = 0x1 << 25
	SubBAWrite   SubType = 0x2 << 25
	SubBASetCode SubType = 0x3 << 25
	SubPORead    SubType = 0x4 << 25
	SubPOSet     SubType = 0x5 << 25
	SubPOWrite   SubType = 0x6 << 25
	SubPOSetCode SubType = 0x7 << 25

	// ControlFlow family.
	SubRepeatSet  SubType = 0
	SubRepeatExec SubType = 0x1 << 25
	SubReturn     SubType = 0x2 << 25
	SubGoto       SubType = 0x3 << 25
	SubGosub      SubType = 0x4 << 25

	// GeckoReg family.
	SubGRSet        SubType = 0
	SubGRRead       SubType = 0x1 << 25
	SubGRWrite      SubType = 0x2 << 25
	SubGRDirectOp   SubType = 0x3 << 25
	SubGROp         SubType = 0x4 << 25
	SubMemcpyFromGR SubType = 0x5 << 25
	SubMemcpyToGR   SubType = 0x6 << 25

	// SpecialIf family.
	SubIfGR16Equ   SubType = 0
	SubIfGR16Neq   SubType = 0x1 << 25
	SubIfGR16Gtr   SubType = 0x2 << 25
	SubIfGR16Lss   SubType = 0x3 << 25
	SubIfCntr16Equ SubType = 0x4 << 25
	SubIfCntr16Neq SubType = 0x5 << 25
	SubIfCntr16Gtr SubType = 0x6 << 25
	SubIfCntr16Lss SubType = 0x7 << 25

	// Misc family.
	SubAsmExec SubType = 0
	SubAsmInst SubType = 0x1 << 25
	SubAsmBrch SubType = 0x3 << 25
	SubSwitch  SubType = 0x6 << 25
	SubRngChck SubType = 0x7 << 25

	// End family.
	SubFullTerm  SubType = 0
	SubEndifElse SubType = 0x1 << 25
	SubEndOfCode SubType = 0x8 << 25
)

// Flags are the two code-level flags carried in the header.
type Flags uint32

const (
	FlagsNone       Flags = 0
	FlagAddrIsStack Flags = 1 << 24
	FlagUsePointer  Flags = 1 << 28
)

// OffsetFlags select how a BAorPO/GeckoReg instruction's offset behaves.
type OffsetFlags uint32

const (
	OffsetNone          OffsetFlags = 0
	OffsetGeckoReg      OffsetFlags = 1 << 12
	OffsetPtrOrBaseAddr OffsetFlags = 1 << 16
	OffsetAddTo         OffsetFlags = 1 << 20
)

// CounterFlags modify a counter-based SpecialIf.
type CounterFlags uint32

const (
	CounterFlagsNone  CounterFlags = 0
	CounterInverse    CounterFlags = 1
	CounterFlagEndif  CounterFlags = 1 << 3
)

// ExecStatus selects which of the code handler's execution-status values a
// ControlFlow instruction is conditioned on.
type ExecStatus uint32

const (
	ExecTrue   ExecStatus = 0
	ExecFalse  ExecStatus = 0x1 << 20
	ExecEither ExecStatus = 0x2 << 20
	// ExecUnset is a sentinel meaning "not specified"; callers resolve it
	// to ExecTrue, matching the C source's GES_NONE handling.
	ExecUnset ExecStatus = 0xFF
)

// RegDataType is the data width of a GeckoReg memory access.
type RegDataType uint32

const (
	RegData8  RegDataType = 0
	RegData16 RegDataType = 0x1 << 22
	RegData32 RegDataType = 0x2 << 22
)

// SerialDataType is the data width of a serial write.
type SerialDataType uint32

const (
	SerialData8  SerialDataType = 0
	SerialData16 SerialDataType = 0x1 << 28
	SerialData32 SerialDataType = 0x2 << 28
)

// RegisterOp is the ALU operation of a GeckoReg direct-operand or reg-reg
// instruction.
type RegisterOp uint32

const (
	OpAdd              RegisterOp = 0
	OpMultiply         RegisterOp = 0x1 << 20
	OpOr               RegisterOp = 0x2 << 20
	OpAnd              RegisterOp = 0x3 << 20
	OpXor              RegisterOp = 0x4 << 20
	OpShiftLeft        RegisterOp = 0x5 << 20
	OpShiftRight       RegisterOp = 0x6 << 20
	OpRotateLeft       RegisterOp = 0x7 << 20
	OpSignedShiftRight RegisterOp = 0x8 << 20
	OpFloatAdd         RegisterOp = 0x9 << 20
	OpFloatMultiply    RegisterOp = 0xA << 20
)

// RegisterOpMode selects which side(s) of a GeckoReg ALU op dereference
// their operand.
type RegisterOpMode uint32

const (
	ModeSrcValueDstValue RegisterOpMode = 0
	ModeSrcDerefDstValue RegisterOpMode = 0x1 << 16
	ModeSrcValueDstDeref RegisterOpMode = 0x2 << 16
	ModeSrcDerefDstDeref RegisterOpMode = 0x3 << 16
)

// Magic is the GCT envelope's repeated header/footer marker word.
const Magic uint32 = 0x00D0C0DE

// Addressing anchors (spec.md §3).
const (
	BaseAddrStart  uint32 = 0x80000000
	StackAddrStart uint32 = 0x81000000
)

// Well-known literal PowerPC words used by the Misc family's assembly
// payload padding.
const (
	InstrBLR uint32 = 0x4E800020
	InstrNOP uint32 = 0x60000000
)
