package market

// Ring is a fixed-size circular buffer holding the last N observed prices.
// When full, new values overwrite the oldest. Not safe for concurrent use;
// the Service serializes access.
type Ring struct {
	buf   []float64
	write int // next write position
	count int
}

// NewRing creates a ring with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]float64, capacity)}
}

// Add records a price, overwriting the oldest entry when full.
func (r *Ring) Add(price float64) {
	r.buf[r.write] = price
	r.write = (r.write + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns the recorded prices in chronological order, oldest first.
func (r *Ring) Values() []float64 {
	out := make([]float64, 0, r.count)

	if r.count < len(r.buf) {
		out = append(out, r.buf[:r.count]...)
		return out
	}

	// Full: the oldest entry sits at the write position.
	for i := 0; i < len(r.buf); i++ {
		out = append(out, r.buf[(r.write+i)%len(r.buf)])
	}
	return out
}

// Len returns the number of recorded prices.
func (r *Ring) Len() int {
	return r.count
}

// Full reports whether the ring has reached capacity.
func (r *Ring) Full() bool {
	return r.count == len(r.buf)
}
