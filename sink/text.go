package sink

import (
	"bufio"
	"fmt"
	"io"
)

// textSink renders every line as uppercase hex, matching the Dolphin/
// Ocarina/Raw-text envelopes: "HHHHHHHH PPPPPPPP\n".
type textSink struct {
	w *bufio.Writer
}

// NewText wraps w in a text-mode Sink.
func NewText(w io.Writer) Sink {
	return &textSink{w: bufio.NewWriter(w)}
}

func (s *textSink) PrintCodeLine(header, payload uint32) error {
	_, err := fmt.Fprintf(s.w, "%08X %08X\n", header, payload)
	return err
}

func (s *textSink) PrintStringPayload(data []byte) error {
	for i := 0; i < len(data); i += 4 {
		end := i + 4
		if end > len(data) {
			end = len(data)
		}
		if _, err := fmt.Fprintf(s.w, "%08X", beUint32(data[i:end])); err != nil {
			return err
		}
		// 2 groups of 4 bytes (8 bytes) per line, one space between groups.
		if (i/4)%2 == 1 || end == len(data) {
			if _, err := s.w.WriteString("\n"); err != nil {
				return err
			}
		} else {
			if _, err := s.w.WriteString(" "); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *textSink) PrintAsmPayload(words []uint32) error {
	for i, w := range words {
		if _, err := fmt.Fprintf(s.w, "%08X", w); err != nil {
			return err
		}
		if i%2 == 1 || i == len(words)-1 {
			if _, err := s.w.WriteString("\n"); err != nil {
				return err
			}
		} else {
			if _, err := s.w.WriteString(" "); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *textSink) Close() error {
	return s.w.Flush()
}

// beUint32 reads up to 4 bytes big-endian, zero-padding a short final
// group (the caller is expected to have already padded the payload to a
// multiple of 8, but a defensive pad here keeps this helper correct on
// its own).
func beUint32(b []byte) uint32 {
	var buf [4]byte
	copy(buf[:], b)
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
}
