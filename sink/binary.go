package sink

import (
	"bufio"
	"encoding/binary"
	"io"
)

// binarySink writes raw big-endian bytes, matching the GCT/Raw envelopes.
type binarySink struct {
	w *bufio.Writer
}

// NewBinary wraps w in a binary-mode Sink.
func NewBinary(w io.Writer) Sink {
	return &binarySink{w: bufio.NewWriter(w)}
}

func (s *binarySink) PrintCodeLine(header, payload uint32) error {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], header)
	binary.BigEndian.PutUint32(buf[4:8], payload)
	_, err := s.w.Write(buf[:])
	return err
}

func (s *binarySink) PrintStringPayload(data []byte) error {
	_, err := s.w.Write(data)
	return err
}

func (s *binarySink) PrintAsmPayload(words []uint32) error {
	for _, w := range words {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], w)
		if _, err := s.w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func (s *binarySink) Close() error {
	return s.w.Flush()
}
