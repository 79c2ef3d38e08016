// musl libc random number generator
// Derived from src/prng/rand.c

package musl

const multiplier = 6364136223846793005

// Source is the state behind musl's rand(). The zero value behaves as if
// seeded with 1.
type Source struct {
	state uint64
}

func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed mirrors srand(): the stored state is seed-1, wrapping at 32 bits.
func (s *Source) Seed(seed uint32) {
	s.state = uint64(seed - 1)
}

func (s *Source) Rand() int32 {
	s.state = multiplier*s.state + 1
	return int32(s.state >> 33)
}
