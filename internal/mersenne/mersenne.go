// Package mersenne implements the standard 32-bit MT19937 Mersenne Twister.
//
// The output sequence is bit-exact against the published reference
// implementation for any given 32-bit seed, on every platform. That makes it
// suitable for deterministic, reproducible pseudorandom streams; it is not a
// cryptographic generator.
package mersenne

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Twister is a 32-bit MT19937 generator. The zero value is not usable;
// construct with New. Not safe for concurrent use.
type Twister struct {
	state [n]uint32
	index int
}

// New returns a Twister seeded with the given 32-bit value.
func New(seed uint32) *Twister {
	t := &Twister{}
	t.Seed(seed)
	return t
}

// Seed resets the generator state from a 32-bit seed using the conventional
// initialization (Knuth multiplier 1812433253).
func (t *Twister) Seed(seed uint32) {
	t.state[0] = seed
	for i := uint32(1); i < n; i++ {
		t.state[i] = 1812433253*(t.state[i-1]^(t.state[i-1]>>30)) + i
	}
	t.index = n
}

// Uint32 returns the next tempered 32-bit output.
func (t *Twister) Uint32() uint32 {
	if t.index >= n {
		t.twist()
	}
	y := t.state[t.index]
	t.index++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// twist regenerates the full state block.
func (t *Twister) twist() {
	for i := 0; i < n; i++ {
		y := (t.state[i] & upperMask) | (t.state[(i+1)%n] & lowerMask)
		v := t.state[(i+m)%n] ^ (y >> 1)
		if y&1 == 1 {
			v ^= matrixA
		}
		t.state[i] = v
	}
	t.index = 0
}
