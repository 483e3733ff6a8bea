package sink

import (
	"bytes"
	"testing"

	"github.com/yonder-tools/geckoasm/gecko"
)

func TestTextPrintCodeLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewText(&buf)
	if err := s.PrintCodeLine(0x04000000, 0x80001234); err != nil {
		t.Fatalf("PrintCodeLine: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := "04000000 80001234\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestBinaryPrintCodeLineEndianness(t *testing.T) {
	var buf bytes.Buffer
	s := NewBinary(&buf)
	if err := s.PrintCodeLine(0x01020304, 0x05060708); err != nil {
		t.Fatalf("PrintCodeLine: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %x, want %x", buf.Bytes(), want)
	}
}

func TestPadBytesToEight(t *testing.T) {
	data := []byte("hi")
	padded := gecko.PadBytes(data, 8)
	if len(padded) != 8 {
		t.Fatalf("expected length 8, got %d", len(padded))
	}
	if !bytes.HasPrefix(padded, data) {
		t.Errorf("padded data does not retain original prefix")
	}

	exact := gecko.PadBytes([]byte("exactly8"), 8)
	if len(exact) != 8 {
		t.Errorf("exact-multiple input should not grow, got length %d", len(exact))
	}
}

func TestPadWordsToEven(t *testing.T) {
	odd := []uint32{0x11111111}
	padded := gecko.PadWords(odd)
	if len(padded) != 2 {
		t.Fatalf("expected length 2, got %d", len(padded))
	}
	if padded[1] != gecko.InstrNOP {
		t.Errorf("expected NOP padding word, got %#x", padded[1])
	}

	even := []uint32{0x11111111, 0x22222222}
	if got := gecko.PadWords(even); len(got) != 2 {
		t.Errorf("even-length input should not grow, got length %d", len(got))
	}
}

func TestBinaryStringPayloadRaw(t *testing.T) {
	var buf bytes.Buffer
	s := NewBinary(&buf)
	data := gecko.PadBytes([]byte("hi"), 8)
	if err := s.PrintStringPayload(data); err != nil {
		t.Fatalf("PrintStringPayload: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.Len() != 8 {
		t.Errorf("expected 8 raw bytes written, got %d", buf.Len())
	}
}
