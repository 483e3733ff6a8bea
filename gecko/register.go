package gecko

// Register identifies one of the code handler's 16 Gecko registers, plus
// the sentinel value the C source overloads onto the same field: "no
// register supplied", which different instruction families resolve to
// either r0 or r15 depending on context.
type Register uint8

const (
	GR0  Register = 0
	GR1  Register = 1
	GR2  Register = 2
	GR3  Register = 3
	GR4  Register = 4
	GR5  Register = 5
	GR6  Register = 6
	GR7  Register = 7
	GR8  Register = 8
	GR9  Register = 9
	GR10 Register = 10
	GR11 Register = 11
	GR12 Register = 12
	GR13 Register = 13
	GR14 Register = 14
	GR15 Register = 15

	// GRNone is the sentinel meaning "no register operand supplied".
	// BAorPO and GeckoReg instructions resolve it to GR0; the memcpy anchor
	// register and SpecialIf register compares resolve it to GR15 instead.
	// Each codegen family applies its own substitution rule explicitly,
	// matching the C source's per-macro repetition of the same ternary.
	GRNone Register = 0xFF
)

// Block selects which of the code handler's 11 repeat/subroutine-return
// slots a ControlFlow instruction's Repeat/Return/Gosub operates on,
// carried in the instruction's payload word rather than its header.
type Block uint8

const (
	GB0  Block = 0
	GB1  Block = 1
	GB2  Block = 2
	GB3  Block = 3
	GB4  Block = 4
	GB5  Block = 5
	GB6  Block = 6
	GB7  Block = 7
	GB8  Block = 8
	GB9  Block = 9
	GB10 Block = 10

	// GBNone is the sentinel meaning "no block supplied"; ControlFlow
	// instructions resolve it to GB0.
	GBNone Block = 0xFF
)
