package demo

import (
	"bytes"
	"testing"

	"github.com/yonder-tools/geckoasm/envelope"
	"github.com/yonder-tools/geckoasm/pass"
)

func TestProgramProducesGCT(t *testing.T) {
	var buf bytes.Buffer
	ctx := pass.NewContext(pass.ABIPrimitive)
	hdr := envelope.Header{Name: Name, Author: Author}
	if err := envelope.Write(&buf, envelope.FormatGCT, hdr, ctx, Program); err != nil {
		t.Fatalf("envelope.Write: %v", err)
	}
	if buf.Len() < 16 {
		t.Fatalf("expected at least prelude+postlude bytes, got %d", buf.Len())
	}
}

func TestProgramProducesDolphinText(t *testing.T) {
	var buf bytes.Buffer
	ctx := pass.NewContext(pass.ABIPrimitive)
	hdr := envelope.Header{Name: Name, Author: Author}
	if err := envelope.Write(&buf, envelope.FormatDolphin, hdr, ctx, Program); err != nil {
		t.Fatalf("envelope.Write: %v", err)
	}
	text := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("$one-shot-heal [geckoasm sample]")) {
		t.Errorf("expected Dolphin header line, got %q", text)
	}
}
