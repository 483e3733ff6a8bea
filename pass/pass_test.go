package pass

import (
	"errors"
	"testing"
)

func TestLabelRoundTrip(t *testing.T) {
	ctx := NewContext(ABIPrimitive)

	err := Run(ctx, func(ctx *Context) error {
		ctx.DeclareLabel("target")

		if _, err := ctx.Enter(1, false); err != nil {
			return err
		}
		if _, err := ctx.Enter(1, false); err != nil {
			return err
		}
		if err := ctx.DefineLabel("target"); err != nil {
			return err
		}

		disp, err := ctx.LabelDisplacement("target")
		if err != nil {
			return err
		}
		if disp != 0 {
			t.Errorf("expected displacement 0 at the label's own line, got %d", disp)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestLabelForwardReference(t *testing.T) {
	ctx := NewContext(ABIPrimitive)
	var gotDisp int32

	err := Run(ctx, func(ctx *Context) error {
		ctx.DeclareLabel("ahead")

		if _, err := ctx.Enter(1, false); err != nil {
			return err
		}
		if ctx.Pass() == "emit" {
			disp, err := ctx.LabelDisplacement("ahead")
			if err != nil {
				return err
			}
			gotDisp = disp
		}

		if _, err := ctx.Enter(1, false); err != nil {
			return err
		}
		if _, err := ctx.Enter(1, false); err != nil {
			return err
		}
		return ctx.DefineLabel("ahead")
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if gotDisp != 2 {
		t.Errorf("expected forward displacement 2, got %d", gotDisp)
	}
}

func TestLineCounterConsistencyAcrossPasses(t *testing.T) {
	ctx := NewContext(ABICodeHandlerCompat)
	var labelLines []uint32

	err := Run(ctx, func(ctx *Context) error {
		ctx.DeclareLabel("mid")
		for i := 0; i < 3; i++ {
			if _, err := ctx.Enter(1, false); err != nil {
				return err
			}
		}
		if err := ctx.DefineLabel("mid"); err != nil {
			return err
		}
		line, err := ctx.Label("mid")
		if err != nil {
			return err
		}
		labelLines = append(labelLines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, l := range labelLines {
		if l != 3 {
			t.Errorf("expected label line 3 on every pass, got %d", l)
		}
	}
}

func TestLinePointerFormula(t *testing.T) {
	ctx := NewContext(ABICodeHandlerCompat)

	err := Run(ctx, func(ctx *Context) error {
		if ctx.Pass() != "emit" {
			if _, err := ctx.Enter(1, true); err != nil {
				return err
			}
			return nil
		}
		want := ctx.ABI.CodeHandlerBase + ctx.ABI.CodeHandlerSize
		if got := ctx.LinePointer(); got != want {
			t.Errorf("expected first line pointer %#x, got %#x", want, got)
		}
		if _, err := ctx.Enter(1, true); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestLineCapExceededPromotesToError(t *testing.T) {
	abi := ABIPrimitive
	abi.LineCap = 2
	ctx := NewContext(abi)

	err := Run(ctx, func(ctx *Context) error {
		for i := 0; i < 3; i++ {
			if _, err := ctx.Enter(1, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected line cap overflow to return an error, got nil")
	}
	if !errors.Is(err, ErrLineCapExceeded) {
		t.Errorf("expected error to wrap ErrLineCapExceeded, got %v", err)
	}
}
