// Package msvc implements the small 32-bit LCG used by the Microsoft C
// runtime's rand(). It returns 15-bit values.
package msvc

const (
	multiplier = 214013
	increment  = 2531011
)

type Source struct {
	state uint32
}

func New(seed uint32) *Source {
	return &Source{state: seed}
}

func (s *Source) Seed(seed uint32) {
	s.state = seed
}

// Rand returns a value in [0, 32767].
func (s *Source) Rand() int32 {
	s.state = s.state*multiplier + increment
	return int32(s.state>>16) & 0x7fff
}
