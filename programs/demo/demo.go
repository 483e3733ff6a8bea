// Package demo is a worked sample patch program exercising labels, a
// masked register compare, a range check, and a full terminator,
// demonstrating the codegen API end-to-end. It doubles as an
// integration-test fixture for the envelope package.
package demo

import (
	"github.com/yonder-tools/geckoasm/codegen"
	"github.com/yonder-tools/geckoasm/gecko"
)

// Name and Author are the metadata the Dolphin/Ocarina envelopes print
// for this program.
const (
	Name   = "one-shot-heal"
	Author = "geckoasm sample"
)

// Program reads a status value through a Gecko register, only applies a
// health-restoring write while the game's base address falls inside a
// plausible loaded-state range, and skips the write entirely once a flag
// byte indicates it has already run.
func Program(e *codegen.Emitter) error {
	e.Context().DeclareLabel("skip_heal")

	if err := e.RangeCheck(0x0000, 0x0100, gecko.FlagsNone); err != nil {
		return err
	}

	// GR0 <- the one-byte "already healed" flag; GR1 <- 0, the comparison
	// value, so the if below is a genuine register-to-register compare
	// rather than a register-to-memory one.
	if err := e.GRRead(gecko.GR0, gecko.RegData8, gecko.OffsetNone, gecko.FlagsNone, 0x803B2174); err != nil {
		return err
	}
	if err := e.GRSet(gecko.GR1, 0x00000000, gecko.OffsetNone, gecko.FlagsNone); err != nil {
		return err
	}
	if err := e.IfGR16NotEqual(gecko.GR0, gecko.GR1, 0, false, 0x00FF, gecko.FlagsNone); err != nil {
		return err
	}
	if err := e.Goto(gecko.ExecTrue, "skip_heal"); err != nil {
		return err
	}
	if err := e.EndifElse(1, false, 0, 0); err != nil {
		return err
	}

	if err := e.Write32(false, false, 0x803B21A0, 0x00000190); err != nil {
		return err
	}
	if err := e.GRSet(gecko.GR0, 0x00000001, gecko.OffsetNone, gecko.FlagsNone); err != nil {
		return err
	}
	if err := e.GRWrite(gecko.GR0, gecko.RegData8, gecko.OffsetNone, gecko.FlagsNone, 0x803B2174); err != nil {
		return err
	}

	if err := e.Context().DefineLabel("skip_heal"); err != nil {
		return err
	}

	return e.FullTerminator(0, 0)
}
