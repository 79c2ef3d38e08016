package rand48

import "math/rand"

var _ rand.Source64 = (*Source)(nil)

// Source lets an Engine drive math/rand. It draws from the engine's own
// state, so it shares that stream with direct calls on the engine.
type Source struct {
	e *Engine
}

func NewSource(e *Engine) *Source {
	return &Source{e: e}
}

// Seed calls Srand48 with the low 32 bits of seed.
func (s *Source) Seed(seed int64) {
	s.e.Srand48(int32(seed))
}

// Uint64 joins two Mrand48 outputs, the first one forming the high half.
func (s *Source) Uint64() uint64 {
	hi := uint32(s.e.Mrand48())
	lo := uint32(s.e.Mrand48())
	return uint64(hi)<<32 | uint64(lo)
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
