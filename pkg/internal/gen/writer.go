package gen

import (
	"bytes"
	"fmt"
	"strings"
)

const header = "// Code generated by tdgen, DO NOT EDIT.\n\n"

// writer accumulates generated source of one file.
type writer struct {
	buf    bytes.Buffer
	indent int
}

// line writes formatted line at current indentation.
func (w *writer) line(format string, args ...any) {
	if format == "" {
		w.buf.WriteString("\n")
		return
	}
	w.buf.WriteString(strings.Repeat("\t", w.indent))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteString("\n")
}

func (w *writer) open(format string, args ...any) {
	w.line(format, args...)
	w.indent++
}

func (w *writer) close(format string, args ...any) {
	w.indent--
	w.line(format, args...)
}

func (w *writer) comment(text string) {
	w.line("// %s", text)
}

func (w *writer) preamble(pkg string, imports ...string) {
	w.buf.WriteString(header)
	w.line("package %s", pkg)
	w.line("")
	w.open("import (")
	for _, imp := range imports {
		if imp == "" {
			w.line("")
			continue
		}
		w.line("%q", imp)
	}
	w.close(")")
}

func (w *writer) Bytes() []byte {
	return w.buf.Bytes()
}
