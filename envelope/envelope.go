// Package envelope implements the five output envelopes a program's
// emitted code lines are wrapped in: Dolphin, GCT, Ocarina, Raw and
// Raw-text. Each envelope opens the right kind of sink.Sink, writes a
// format-specific prelude, drives the user's program through pass.Run,
// then writes the format's postlude.
package envelope

import (
	"fmt"
	"io"

	"github.com/yonder-tools/geckoasm/codegen"
	"github.com/yonder-tools/geckoasm/gecko"
	"github.com/yonder-tools/geckoasm/pass"
	"github.com/yonder-tools/geckoasm/sink"
)

// Format names the five supported envelopes, as accepted by the
// -c/--codefmt flag.
type Format string

const (
	FormatDolphin Format = "dolphin"
	FormatGCT     Format = "gct"
	FormatOcarina Format = "ocarina"
	FormatRaw     Format = "raw"
	FormatRawText Format = "rawtext"
)

// IsBinary reports whether f's envelope writes raw bytes rather than hex
// text, matching the C source's G_IsOutputBin table.
func (f Format) IsBinary() bool {
	return f == FormatGCT || f == FormatRaw
}

// Header carries the metadata the Dolphin and Ocarina envelopes print
// ahead of the code lines themselves.
type Header struct {
	Name   string
	Author string
}

// Program is a user-supplied patch program: a single function that emits
// its code through e, called once per pass.
type Program func(e *codegen.Emitter) error

// Write opens the right sink for format over w, writes its prelude, runs
// program through ctx's passes, writes its postlude, and flushes. It is
// the single entry point the Program Driver calls.
func Write(w io.Writer, format Format, hdr Header, ctx *pass.Context, program Program) error {
	switch format {
	case FormatDolphin:
		return writeDolphin(w, hdr, ctx, program)
	case FormatGCT:
		return writeGCT(w, ctx, program)
	case FormatOcarina:
		return writeOcarina(w, hdr, ctx, program)
	case FormatRaw:
		return writeRaw(w, ctx, program)
	case FormatRawText:
		return writeRawText(w, ctx, program)
	default:
		return fmt.Errorf("envelope: unknown format %q", format)
	}
}

func runProgram(s sink.Sink, ctx *pass.Context, program Program) error {
	e := codegen.NewEmitter(s, ctx)
	return pass.Run(ctx, func(*pass.Context) error {
		return program(e)
	})
}

func writeDolphin(w io.Writer, hdr Header, ctx *pass.Context, program Program) error {
	s := sink.NewText(w)
	if _, err := fmt.Fprintf(w, "$%s [%s]\n", hdr.Name, hdr.Author); err != nil {
		return err
	}
	if err := runProgram(s, ctx, program); err != nil {
		return err
	}
	return s.Close()
}

func writeOcarina(w io.Writer, hdr Header, ctx *pass.Context, program Program) error {
	s := sink.NewText(w)
	if _, err := fmt.Fprintf(w, "[%s]\n%s\n", hdr.Name, hdr.Author); err != nil {
		return err
	}
	if err := runProgram(s, ctx, program); err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "*\n")
	return err
}

func writeGCT(w io.Writer, ctx *pass.Context, program Program) error {
	s := sink.NewBinary(w)
	if err := s.PrintCodeLine(gecko.Magic, gecko.Magic); err != nil {
		return err
	}
	if err := runProgram(s, ctx, program); err != nil {
		return err
	}
	endHeader := uint32(gecko.FamilyEnd) | uint32(gecko.SubEndOfCode)
	if err := s.PrintCodeLine(endHeader, 0); err != nil {
		return err
	}
	return s.Close()
}

func writeRaw(w io.Writer, ctx *pass.Context, program Program) error {
	s := sink.NewBinary(w)
	if err := runProgram(s, ctx, program); err != nil {
		return err
	}
	return s.Close()
}

func writeRawText(w io.Writer, ctx *pass.Context, program Program) error {
	s := sink.NewText(w)
	if err := runProgram(s, ctx, program); err != nil {
		return err
	}
	return s.Close()
}
