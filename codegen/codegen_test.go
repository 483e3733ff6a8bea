package codegen

import (
	"bytes"
	"testing"

	"github.com/yonder-tools/geckoasm/gecko"
	"github.com/yonder-tools/geckoasm/pass"
	"github.com/yonder-tools/geckoasm/sink"
)

func runEmit(t *testing.T, abi pass.ABI, program func(e *Emitter) error) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	ctx := pass.NewContext(abi)
	s := sink.NewBinary(&buf)
	e := NewEmitter(s, ctx)
	if err := pass.Run(ctx, func(*pass.Context) error {
		return program(e)
	}); err != nil {
		t.Fatalf("pass.Run: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("sink.Close: %v", err)
	}
	return &buf
}

func TestWrite32Encoding(t *testing.T) {
	buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		return e.Write32(false, false, 0x1000, 0xDEADBEEF)
	})
	if buf.Len() != 8 {
		t.Fatalf("expected 8 bytes, got %d", buf.Len())
	}
	wantHeader := uint32(gecko.FamilyWrite) | uint32(gecko.SubWrite32) | 0x1000
	gotHeader := be32(buf.Bytes()[0:4])
	if gotHeader != wantHeader {
		t.Errorf("header = %#08x, want %#08x", gotHeader, wantHeader)
	}
	gotPayload := be32(buf.Bytes()[4:8])
	if gotPayload != 0xDEADBEEF {
		t.Errorf("payload = %#08x, want %#08x", gotPayload, uint32(0xDEADBEEF))
	}
}

func TestWrite8UsePointerAndStackFlags(t *testing.T) {
	buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		return e.Write8(true, true, 0x20, 0xAB)
	})
	header := be32(buf.Bytes()[0:4])
	if header&uint32(gecko.FlagUsePointer) == 0 {
		t.Error("expected UsePointer flag set")
	}
	if header&uint32(gecko.FlagAddrIsStack) == 0 {
		t.Error("expected AddrIsStack flag set")
	}
}

func TestWriteSerialCountFormula(t *testing.T) {
	cases := []struct {
		count    uint16
		wantBits uint32
	}{
		{0, 0},
		{1, 0},
		{5, 4},
	}
	for _, c := range cases {
		buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
			return e.WriteSerial(false, false, 0, gecko.SerialData32, 1, c.count, 0, 0)
		})
		header2 := be32(buf.Bytes()[8:12])
		got := (header2 >> 16) & 0xFFF
		if got != c.wantBits {
			t.Errorf("count=%d: repeat field = %d, want %d", c.count, got, c.wantBits)
		}
	}
}

func TestRepeatSetBlockNoneResolvesToGB0(t *testing.T) {
	buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		return e.RepeatSet(gecko.GBNone, 4)
	})
	payload := be32(buf.Bytes()[4:8])
	if gecko.Block(payload) != gecko.GB0 {
		t.Errorf("expected GBNone to resolve to GB0 in ControlFlow, got block %d", payload)
	}
}

func TestGRNoneResolvesToGR0InGeckoReg(t *testing.T) {
	buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		return e.GRSet(gecko.GRNone, 0x1, gecko.OffsetNone, gecko.FlagsNone)
	})
	header := be32(buf.Bytes()[0:4])
	if gecko.Register(header&0xFF) != gecko.GR0 {
		t.Errorf("expected GRNone to resolve to GR0 in GeckoReg, got register %d", header&0xFF)
	}
}

func TestGotoForwardLabelResolves(t *testing.T) {
	buf := runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		e.Context().DeclareLabel("skip")
		if err := e.Goto(gecko.ExecTrue, "skip"); err != nil {
			return err
		}
		if err := e.Write32(false, false, 0, 0); err != nil {
			return err
		}
		return e.Context().DefineLabel("skip")
	})
	// Goto line (8 bytes) + Write32 line (8 bytes).
	if buf.Len() != 16 {
		t.Fatalf("expected 16 bytes, got %d", buf.Len())
	}
	header := be32(buf.Bytes()[0:4])
	if header&0xFFFF != 0 {
		t.Errorf("expected normalized displacement field 0 for a one-line forward jump, got %#x", header&0xFFFF)
	}
	payload := be32(buf.Bytes()[4:8])
	if gecko.Block(payload) != gecko.GB0 {
		t.Errorf("expected Goto's block payload to be GB0, got %d", payload)
	}
}

func TestLinePointerAdvancesPerLineUnderCodeHandlerCompat(t *testing.T) {
	var seen []uint32
	buf := runEmit(t, pass.ABICodeHandlerCompat, func(e *Emitter) error {
		// pass.Run calls this closure once per pass; only the final (emit)
		// call's values matter, so each call starts fresh.
		seen = nil
		p, err := e.LinePointer()
		if err != nil {
			return err
		}
		seen = append(seen, p)
		if err := e.Write32(false, false, 0, 0); err != nil {
			return err
		}
		p, err = e.LinePointer()
		if err != nil {
			return err
		}
		seen = append(seen, p)
		return e.Write32(false, false, 0, 0)
	})
	if buf.Len() != 16 {
		t.Fatalf("expected 16 bytes, got %d", buf.Len())
	}
	// Enter's pointer counter advances before LinePointer reads it, so the
	// first query already reflects one pointer-carrying line.
	want := pass.ABICodeHandlerCompat.CodeHandlerBase + pass.ABICodeHandlerCompat.CodeHandlerSize
	if seen[0] != want+8 {
		t.Errorf("first LinePointer = %#x, want %#x", seen[0], want+8)
	}
	if seen[1] != want+16 {
		t.Errorf("second LinePointer = %#x, want %#x", seen[1], want+16)
	}
}

func TestLinePointerZeroWithoutLinePointerABI(t *testing.T) {
	var got uint32
	runEmit(t, pass.ABIPrimitive, func(e *Emitter) error {
		p, err := e.LinePointer()
		if err != nil {
			return err
		}
		got = p
		return nil
	})
	if got != 0 {
		t.Errorf("expected LinePointer to be 0 under an ABI without line pointers, got %#x", got)
	}
}

func TestLineCapPropagatesFromPassPackage(t *testing.T) {
	abi := pass.ABIPrimitive
	abi.LineCap = 1
	var buf bytes.Buffer
	ctx := pass.NewContext(abi)
	s := sink.NewBinary(&buf)
	e := NewEmitter(s, ctx)
	err := pass.Run(ctx, func(*pass.Context) error {
		if err := e.Write32(false, false, 0, 0); err != nil {
			return err
		}
		return e.Write32(false, false, 4, 0)
	})
	if err == nil {
		t.Fatal("expected line cap overflow to propagate as an error")
	}
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
