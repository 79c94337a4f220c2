package vdaftest

// ConstReader is an io.Reader that yields an infinite stream of a single
// repeated byte. It gives test scenarios a reproducible stand-in for
// crypto/rand wherever the core accepts an io.Reader source of randomness.
type ConstReader struct {
	B byte
}

// Repeat returns a ConstReader of b.
func Repeat(b byte) ConstReader {
	return ConstReader{B: b}
}

func (r ConstReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.B
	}
	return len(p), nil
}
