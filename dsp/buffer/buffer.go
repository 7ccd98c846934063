package buffer

// Complex is a growable complex128 work buffer.
type Complex struct {
	data []complex128
}

// New returns a zero-filled Complex buffer of the given length.
// A negative length is treated as 0.
func New(length int) *Complex {
	if length < 0 {
		length = 0
	}
	return &Complex{data: make([]complex128, length)}
}

// Samples returns the underlying slice.
func (b *Complex) Samples() []complex128 {
	return b.data
}

// Len returns the number of samples.
func (b *Complex) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the underlying slice.
func (b *Complex) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reallocating only when n exceeds the capacity.
// Samples exposed by growing within the capacity are zeroed.
func (b *Complex) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > cap(b.data) {
		grown := make([]complex128, n)
		copy(grown, b.data)
		b.data = grown
		return
	}
	old := len(b.data)
	b.data = b.data[:n]
	if n > old {
		clear(b.data[old:])
	}
}

// Zero sets all samples to 0.
func (b *Complex) Zero() {
	clear(b.data)
}

// LoadReal zeroes the buffer and copies src into the real parts of its first
// samples. It returns the number of samples copied.
func (b *Complex) LoadReal(src []float64) int {
	b.Zero()
	n := min(len(src), len(b.data))
	for i := 0; i < n; i++ {
		b.data[i] = complex(src[i], 0)
	}
	return n
}
