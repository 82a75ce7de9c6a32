package main

import (
	"bufio"
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/k0kubun/pp/v3"
	"github.com/klauspost/compress/zstd"

	"go.mau.fi/gotdlib/pkg/tdapi"
	"go.mau.fi/gotdlib/pkg/tdjson"
)

// Formatter writes a single decoded object.
type Formatter func(w io.Writer, obj tdjson.Object) error

func formats(name string) Formatter {
	switch name {
	case "go":
		printer := pp.New()
		printer.SetColoringEnabled(false)
		printer.SetExportedOnly(true)
		return func(w io.Writer, obj tdjson.Object) error {
			_, err := printer.Fprintln(w, obj)
			return err
		}
	case "json":
		return func(w io.Writer, obj tdjson.Object) error {
			data, err := tdjson.Marshal(obj)
			if err != nil {
				return err
			}
			_, err = w.Write(append(data, '\n'))
			return err
		}
	default:
		return nil
	}
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// maxLine is the longest object a recording may contain.
const maxLine = 16 << 20

// Printer decodes a recording of TDLib JSON objects, one per line, and
// prints them. Recordings compressed with zstd are detected automatically.
type Printer struct {
	src         io.Reader
	format      Formatter
	skipUnknown bool
}

// NewPrinter creates new Printer.
func NewPrinter(src io.Reader, format Formatter) Printer {
	return Printer{src: src, format: format}
}

// SkipUnknown makes Print ignore objects of types missing from the schema.
func (p Printer) SkipUnknown(skip bool) Printer {
	p.skipUnknown = skip
	return p
}

// Print prints every object to output.
func (p Printer) Print(output io.Writer) error {
	src := bufio.NewReader(p.src)
	var r io.Reader = src
	if magic, err := src.Peek(len(zstdMagic)); err == nil && bytes.Equal(magic, zstdMagic) {
		dec, err := zstd.NewReader(src)
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		defer dec.Close()
		r = dec
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 1; s.Scan(); line++ {
		data := bytes.TrimSpace(s.Bytes())
		if len(data) == 0 {
			continue
		}
		obj, err := tdapi.DecodeObject(tdjson.DecodeBytes(data))
		if err != nil {
			var unknown *tdjson.UnknownTypeError
			if p.skipUnknown && errors.As(err, &unknown) {
				continue
			}
			return errors.Wrapf(err, "line %d", line)
		}
		if err := p.format(output, obj); err != nil {
			return errors.Wrapf(err, "print line %d", line)
		}
	}
	return s.Err()
}
