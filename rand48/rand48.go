// Package rand48 implements the 48-bit linear congruential generator behind
// the Unix drand48 family, producing the same streams as the C library for
// the same seed and parameters.
//
// It is not suitable for cryptography or for anything that needs
// unpredictable numbers.
package rand48

const (
	defaultMultiplier uint64 = 0x5deece66d
	defaultAddend     uint16 = 11
	initialState      uint64 = 0x1234abcd330e
	mask48            uint64 = 1<<48 - 1
)

// Engine holds the generator's own seed together with the multiplier and
// addend used by every call, including those on caller-owned buffers.
//
// An Engine is not safe for concurrent use; give each goroutine its own.
type Engine struct {
	state  [3]uint16
	mult   [3]uint16
	addend uint16
}

// New returns an Engine in the state the C library starts in:
// seed 0x1234abcd330e, multiplier 0x5deece66d and addend 11.
func New() *Engine {
	e := &Engine{state: split48(initialState)}
	e.resetParams()
	return e
}

func (e *Engine) resetParams() {
	e.mult = split48(defaultMultiplier)
	e.addend = defaultAddend
}

func join48(s *[3]uint16) uint64 {
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32
}

func split48(x uint64) [3]uint16 {
	return [3]uint16{uint16(x), uint16(x >> 16), uint16(x >> 32)}
}

// iterate replaces s with (s*a + c) mod 2^48. The 64-bit product wraps
// modulo 2^64, which leaves the low 48 bits exact.
func (e *Engine) iterate(s *[3]uint16) {
	x := join48(s)*join48(&e.mult) + uint64(e.addend)
	*s = split48(x & mask48)
}

func unsigned31(s *[3]uint16) int32 {
	return int32(s[2])<<15 | int32(s[1]>>1)
}

func signed32(s *[3]uint16) int32 {
	return int32(uint32(s[2])<<16 | uint32(s[1]))
}

func float48(s *[3]uint16) float64 {
	return float64(join48(s)) * 0x1p-48
}

// Lrand48 advances the engine's state and returns a non-negative value
// in [0, 2^31).
func (e *Engine) Lrand48() int32 {
	e.iterate(&e.state)
	return unsigned31(&e.state)
}

// Nrand48 is Lrand48 on the caller's buffer xsubi, which is updated in place.
// The engine's own state is left alone.
func (e *Engine) Nrand48(xsubi *[3]uint16) int32 {
	e.iterate(xsubi)
	return unsigned31(xsubi)
}

// Mrand48 advances the engine's state and returns the top 32 bits as a
// signed value in [-2^31, 2^31).
func (e *Engine) Mrand48() int32 {
	e.iterate(&e.state)
	return signed32(&e.state)
}

// Jrand48 is Mrand48 on the caller's buffer xsubi.
func (e *Engine) Jrand48(xsubi *[3]uint16) int32 {
	e.iterate(xsubi)
	return signed32(xsubi)
}

// Drand48 advances the engine's state and returns it scaled into [0.0, 1.0).
func (e *Engine) Drand48() float64 {
	e.iterate(&e.state)
	return float48(&e.state)
}

// Erand48 is Drand48 on the caller's buffer xsubi.
func (e *Engine) Erand48(xsubi *[3]uint16) float64 {
	e.iterate(xsubi)
	return float48(xsubi)
}

// Lcong48 sets the seed from param[0:3], the multiplier from param[3:6]
// and the addend from param[6]. Each group of three is least significant
// word first. The new multiplier and addend apply to the engine's state and
// to every buffer passed to Nrand48, Jrand48 and Erand48 until the next
// Lcong48 or Seed48.
func (e *Engine) Lcong48(param [7]uint16) {
	e.state = [3]uint16{param[0], param[1], param[2]}
	e.mult = [3]uint16{param[3], param[4], param[5]}
	e.addend = param[6]
}

// Seed48 replaces the seed, restores the default multiplier and addend,
// and returns the seed that was in use before the call.
func (e *Engine) Seed48(seed16v [3]uint16) [3]uint16 {
	old := e.state
	e.state = seed16v
	e.resetParams()
	return old
}

// Srand48 sets the high 32 bits of the seed to the bit pattern of seedval
// and the low 16 bits to 0x330e. Unlike Seed48 it keeps the current
// multiplier and addend.
func (e *Engine) Srand48(seedval int32) {
	e.state = [3]uint16{uint16(initialState & 0xffff), uint16(seedval), uint16(uint32(seedval) >> 16)}
}

// State returns a copy of the engine's current seed.
func (e *Engine) State() [3]uint16 {
	return e.state
}

// Params returns the multiplier and addend currently in use.
func (e *Engine) Params() (mult [3]uint16, addend uint16) {
	return e.mult, e.addend
}
