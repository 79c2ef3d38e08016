package fixture

import (
	"fmt"
	"strconv"

	"github.com/philronan/rand48/rand/msvc"
	"github.com/philronan/rand48/rand/musl"
	"github.com/philronan/rand48/rand/uclibc"
	"github.com/philronan/rand48/rand48"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// A stream returns the textual form of successive outputs of one generator.
type stream func() string

type newStream func(seed uint32) stream

type libcRand interface {
	Rand() int32
}

// Generators in the order they are recorded. The rand48 entries backed by
// an external buffer start from the same 48-bit value srand48 would give,
// so their sequences equal the internal ones.
var generators = orderedmap.New[string, newStream](orderedmap.WithInitialData(
	orderedmap.Pair[string, newStream]{Key: "lrand48", Value: internal48(func(e *rand48.Engine) string { return formatInt(e.Lrand48()) })},
	orderedmap.Pair[string, newStream]{Key: "mrand48", Value: internal48(func(e *rand48.Engine) string { return formatInt(e.Mrand48()) })},
	orderedmap.Pair[string, newStream]{Key: "drand48", Value: internal48(func(e *rand48.Engine) string { return formatFloat(e.Drand48()) })},
	orderedmap.Pair[string, newStream]{Key: "nrand48", Value: external48(func(e *rand48.Engine, x *[3]uint16) string { return formatInt(e.Nrand48(x)) })},
	orderedmap.Pair[string, newStream]{Key: "jrand48", Value: external48(func(e *rand48.Engine, x *[3]uint16) string { return formatInt(e.Jrand48(x)) })},
	orderedmap.Pair[string, newStream]{Key: "erand48", Value: external48(func(e *rand48.Engine, x *[3]uint16) string { return formatFloat(e.Erand48(x)) })},
	orderedmap.Pair[string, newStream]{Key: "quick", Value: libc(func(seed uint32) libcRand { return msvc.New(seed) })},
	orderedmap.Pair[string, newStream]{Key: "musl", Value: libc(func(seed uint32) libcRand { return musl.New(seed) })},
	orderedmap.Pair[string, newStream]{Key: "uclibc", Value: libc(func(seed uint32) libcRand { return uclibc.New(seed) })},
))

func internal48(draw func(e *rand48.Engine) string) newStream {
	return func(seed uint32) stream {
		e := rand48.New()
		e.Srand48(int32(seed))
		return func() string { return draw(e) }
	}
}

func external48(draw func(e *rand48.Engine, xsubi *[3]uint16) string) newStream {
	return func(seed uint32) stream {
		e := rand48.New()
		xsubi := [3]uint16{0x330e, uint16(seed), uint16(seed >> 16)}
		return func() string { return draw(e, &xsubi) }
	}
}

func libc(newSource func(seed uint32) libcRand) newStream {
	return func(seed uint32) stream {
		src := newSource(seed)
		return func() string { return formatInt(src.Rand()) }
	}
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// Shortest form that parses back to the same float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Names lists the known generators in recording order.
func Names() []string {
	names := make([]string, 0, generators.Len())
	for pair := generators.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Stream returns a function producing the outputs of the named generator
// after seeding it with seed.
func Stream(name string, seed uint32) (func() string, error) {
	start, present := generators.Get(name)
	if !present {
		return nil, fmt.Errorf("unknown generator: %v", name)
	}
	return start(seed), nil
}
