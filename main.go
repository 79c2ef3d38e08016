package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philronan/rand48/fixture"
)

func main() {
	l := log.New(os.Stderr, "", 0)

	generators := flag.String("gen", "", "comma-separated generators to run, or \"all\" (one of: "+strings.Join(fixture.Names(), ", ")+")")
	seedValue := flag.String("seed", "0", "seed passed to each generator")
	count := flag.Int("n", 10, "number of values per generator")
	outputFile := flag.String("out", "", "record a fixture to this file instead of printing (use with: -gen)")
	asYAML := flag.Bool("yaml", false, "record the fixture as yaml instead of json")
	verifyFile := flag.String("verify", "", "fixture file to check against the generators")
	flag.Parse()

	if *generators != "" {
		seed, err := strconv.ParseUint(*seedValue, 0, 32)
		if err != nil {
			l.Fatal(err)
		}

		var names []string
		if *generators != "all" {
			names = strings.Split(*generators, ",")
		}
		f, err := fixture.Record(uint32(seed), *count, names...)
		if err != nil {
			l.Fatal(err)
		}

		if *outputFile == "" {
			for pair := f.Sequences.Oldest(); pair != nil; pair = pair.Next() {
				fmt.Printf("%s: %s\n", pair.Key, strings.Join(pair.Value, " "))
			}
			return
		}

		var b []byte
		if *asYAML {
			b, err = fixture.ToYAML(f)
		} else {
			b, err = fixture.ToJSON(f)
		}
		if err != nil {
			l.Fatal(err)
		}
		if err := writeFileNoTrunc(*outputFile, b); err != nil {
			l.Fatal(err)
		}
		fmt.Println("Wrote fixture to", getAbsPath(*outputFile))
	} else if *verifyFile != "" {
		b, err := os.ReadFile(*verifyFile)
		if err != nil {
			l.Fatal(err)
		}

		var f *fixture.Fixture
		switch filepath.Ext(*verifyFile) {
		case ".yaml", ".yml":
			f, err = fixture.FromYAML(b)
		default:
			f, err = fixture.FromJSON(b)
		}
		if err != nil {
			l.Fatalf("%v: %v\n", getAbsPath(*verifyFile), err)
		}

		if err := fixture.Verify(f); err != nil {
			l.Println("verify error:", err)
			if errors.Is(err, fixture.ErrMismatch) {
				l.Println("Generator output no longer matches the recorded fixture")
			}
			os.Exit(1)
		}
		fmt.Printf("%v sequences of %v values match\n", f.Sequences.Len(), f.Count)
	} else {
		flag.Usage()
		os.Exit(1)
	}
}

func getAbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}

func writeFileNoTrunc(name string, b []byte) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err = f.Write(b); err != nil {
		return err
	}
	return f.Close()
}
