package gecko

// PadBytes pads data up to the next multiple of n with zero bytes,
// matching the C source's __RoundUpToNearest8__ used by G_WriteString.
func PadBytes(data []byte, n int) []byte {
	rem := len(data) % n
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+(n-rem))
	copy(padded, data)
	return padded
}

// PadWords pads words up to an even count with trailing NOPs, matching
// the C source's __RoundUpToNearest2__ used by G_ExecuteAssembly and
// G_InsertAssembly.
func PadWords(words []uint32) []uint32 {
	if len(words)%2 == 0 {
		return words
	}
	return append(append([]uint32{}, words...), InstrNOP)
}
