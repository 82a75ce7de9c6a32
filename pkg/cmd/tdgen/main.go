// Command tdgen generates TDLib JSON API bindings from td_api.tl.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gotd/tl"
	flag "github.com/spf13/pflag"
	"go.mau.fi/util/exerrors"

	"go.mau.fi/gotdlib/pkg/internal/gen"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to .tl schema")
	target := flag.String("target", ".", "Target directory")
	pkg := flag.String("package", "tdapi", "Package name of generated code")
	clean := flag.Bool("clean", false, "Remove previously generated files")
	flag.Parse()

	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "--schema is required")
		os.Exit(2)
	}

	f := exerrors.Must(os.Open(*schemaPath))
	schema := exerrors.Must(tl.Parse(bufio.NewReader(f)))
	exerrors.PanicIfNotNil(f.Close())

	g := exerrors.Must(gen.New(schema, gen.Options{Package: *pkg}))
	exerrors.PanicIfNotNil(os.MkdirAll(*target, 0o755))
	exerrors.PanicIfNotNil(g.WriteDir(*target, *clean))
}
