// Implements the TYPE_3 random number generator used by uClibc
// Derived from random.c and random_r.c
//
// glibc uses the same algorithm, so for seeds below 2^31 the output equals
// glibc's rand().

package uclibc

const (
	deg3 = 31
	sep3 = 3

	// srand discards this many outputs before handing out the first one.
	warmup = deg3 * 10
)

// Source is an additive feedback generator over a table of deg3 words.
type Source struct {
	front int
	rear  int
	table [deg3]int32
}

func New(seed uint32) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed fills the table from seed with the Park-Miller minimal standard
// generator and then runs the generator through its warm-up.
func (s *Source) Seed(seed uint32) {
	word := int64(seed)
	if word == 0 {
		word = 1
	}
	s.table[0] = int32(word)

	for i := 1; i < deg3; i++ {
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		s.table[i] = int32(word)
	}

	s.front = sep3
	s.rear = 0
	for i := 0; i < warmup; i++ {
		s.Rand()
	}
}

// Rand returns a value in [0, 2^31).
func (s *Source) Rand() int32 {
	val := s.table[s.front] + s.table[s.rear]
	s.table[s.front] = val
	result := (val >> 1) & 0x7fffffff

	s.front++
	if s.front >= deg3 {
		s.front = 0
		s.rear++
	} else {
		s.rear++
		if s.rear >= deg3 {
			s.rear = 0
		}
	}
	return result
}
