// Package fixture records generator output into files that can be checked
// back later, so a change that alters any stream is caught.
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ErrMismatch is returned by Verify when a regenerated value differs from
// the recorded one.
var ErrMismatch = errors.New("sequence mismatch")

type Fixture struct {
	// Seed given to every generator, through srand48 or srand.
	Seed uint32 `json:"seed" yaml:"seed"`

	// Number of values recorded per generator.
	Count int `json:"count" yaml:"count"`

	// Generator name to recorded values. Integers are in decimal, doubles in
	// the shortest form that reads back exactly.
	Sequences *orderedmap.OrderedMap[string, []string] `json:"sequences" yaml:"sequences"`
}

// Record seeds each named generator with seed and captures its first count
// values. With no names, every generator is recorded.
func Record(seed uint32, count int, names ...string) (*Fixture, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %v", count)
	}
	if len(names) == 0 {
		names = Names()
	}

	f := &Fixture{
		Seed:      seed,
		Count:     count,
		Sequences: orderedmap.New[string, []string](len(names)),
	}
	for _, name := range names {
		if _, present := f.Sequences.Get(name); present {
			return nil, fmt.Errorf("generator listed twice: %v", name)
		}
		next, err := Stream(name, seed)
		if err != nil {
			return nil, err
		}
		values := make([]string, count)
		for i := range values {
			values[i] = next()
		}
		f.Sequences.Set(name, values)
	}
	return f, nil
}

// Verify regenerates every sequence in f and compares it with the recorded
// values. The first difference is reported as an error wrapping ErrMismatch.
func Verify(f *Fixture) error {
	if err := validate(f); err != nil {
		return err
	}
	for pair := f.Sequences.Oldest(); pair != nil; pair = pair.Next() {
		next, err := Stream(pair.Key, f.Seed)
		if err != nil {
			return err
		}
		for i, expected := range pair.Value {
			if got := next(); got != expected {
				return fmt.Errorf("%w: %v value %v is %v, expected %v", ErrMismatch, pair.Key, i, got, expected)
			}
		}
	}
	return nil
}

func ToJSON(f *Fixture) ([]byte, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func FromJSON(b []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := json.Unmarshal(b, f); err != nil {
		return nil, err
	}
	if err := validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

func ToYAML(f *Fixture) ([]byte, error) {
	return yaml.Marshal(f)
}

func FromYAML(b []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	if err := validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

func validate(f *Fixture) error {
	if f.Count <= 0 {
		return fmt.Errorf("count must be positive, got %v", f.Count)
	}
	if f.Sequences == nil || f.Sequences.Len() == 0 {
		return errors.New("fixture has no sequences")
	}
	for pair := f.Sequences.Oldest(); pair != nil; pair = pair.Next() {
		if _, present := generators.Get(pair.Key); !present {
			return fmt.Errorf("unknown generator: %v", pair.Key)
		}
		if len(pair.Value) != f.Count {
			return fmt.Errorf("%v has %v values, count is %v", pair.Key, len(pair.Value), f.Count)
		}
	}
	return nil
}
