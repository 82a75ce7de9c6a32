// Command tdprint pretty prints recorded TDLib JSON objects.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.mau.fi/util/exerrors"
)

func main() {
	format := flag.StringP("format", "f", "go", "Output format (go, json)")
	skipUnknown := flag.BoolP("skip-unknown", "k", false, "Skip objects of unknown types")
	flag.Parse()

	f := formats(*format)
	if f == nil {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	var input io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		file := exerrors.Must(os.Open(path))
		defer file.Close()
		input = file
	}
	if err := NewPrinter(input, f).SkipUnknown(*skipUnknown).Print(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
