package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	scalar "github.com/shabbyrobe/go-scalar"
)

// Prints what a buffer of <count> elements of a scalar kind would occupy. The
// kind is resolved the same way a config file's "dtype" field is.

const usage = `Scalar info

Usage: scalarinfo [-dump] <kind> <count>

<kind> is one of float32, complex64, float64, complex128, or one of the
aliases float, single, double, complex<float>, complex<double>.`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fs := flag.NewFlagSet("scalarinfo", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "Dump the resolved tag")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	args := fs.Args()
	if len(args) < 2 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	tag, err := scalar.ParseScalarTag(args[0])
	if err != nil {
		return err
	}

	count, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return err
	} else if count < 0 {
		return fmt.Errorf("count must not be negative, found %d", count)
	}

	desc := scalar.Match4(tag, scalar.Cases4(
		func(scalar.Tag[float32]) string { return "real, single precision" },
		func(scalar.Tag[complex64]) string { return "complex, single precision" },
		func(scalar.Tag[float64]) string { return "real, double precision" },
		func(scalar.Tag[complex128]) string { return "complex, double precision" },
	))

	kind := scalar.TagKind(tag)
	total := count * int64(kind.Size())

	fmt.Printf("kind:    %s (%s)\n", kind, desc)
	fmt.Printf("real:    %s\n", scalar.ToReal(tag))
	fmt.Printf("element: %dB\n", kind.Size())
	fmt.Printf("count:   %s\n", scalar.WithSuffix(count))
	fmt.Printf("total:   %sB\n", scalar.WithSuffix(total))

	if *dump {
		spew.Dump(tag)
	}
	return nil
}
