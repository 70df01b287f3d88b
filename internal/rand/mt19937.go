// Package rand provides the pseudo-random generator used where plain
// uniform noise is wanted instead of a low-discrepancy sequence, such as
// placing test spheres.
package rand

import "time"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// Uniform is a Mersenne Twister (MT19937) generator.
type Uniform struct {
	mt  [mtN]uint32
	mti int
}

// New returns a generator seeded with seed.
func New(seed uint32) *Uniform {
	u := &Uniform{}
	u.Seed(seed)
	return u
}

// NewTimeSeed returns a generator seeded from the wall clock.
func NewTimeSeed() *Uniform {
	return New(uint32(time.Now().UnixNano()))
}

// Seed resets the generator state.
func (u *Uniform) Seed(seed uint32) {
	u.mt[0] = seed
	for i := 1; i < mtN; i++ {
		u.mt[i] = 1812433253*(u.mt[i-1]^(u.mt[i-1]>>30)) + uint32(i)
	}
	u.mti = mtN
}

// twist regenerates the whole state block.
func (u *Uniform) twist() {
	mag01 := [2]uint32{0, matrixA}
	for kk := 0; kk < mtN; kk++ {
		y := (u.mt[kk] & upperMask) | (u.mt[(kk+1)%mtN] & lowerMask)
		u.mt[kk] = u.mt[(kk+mtM)%mtN] ^ (y >> 1) ^ mag01[y&1]
	}
	u.mti = 0
}

// Uint32 returns the next 32 random bits.
func (u *Uniform) Uint32() uint32 {
	if u.mti >= mtN {
		u.twist()
	}

	y := u.mt[u.mti]
	u.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// Float64 returns a value in [0, 1) with 53 random bits.
func (u *Uniform) Float64() float64 {
	a := u.Uint32() >> 5
	b := u.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Between returns a value in [min, max).
func (u *Uniform) Between(min, max float64) float64 {
	t := u.Float64()
	return min*(1-t) + max*t
}
