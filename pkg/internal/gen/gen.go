// Package gen generates Go bindings for TDLib JSON API from TL schema.
package gen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gotd/tl"
	"golang.org/x/tools/imports"
)

// Options of Generator.
type Options struct {
	// Package name of generated code.
	Package string
}

// Generator generates Go source files from TL schema.
type Generator struct {
	pkg    string
	schema *schema
}

// New creates new Generator for given schema.
func New(s *tl.Schema, opts Options) (*Generator, error) {
	if opts.Package == "" {
		opts.Package = "tdapi"
	}
	prepared, err := buildSchema(s)
	if err != nil {
		return nil, errors.Wrap(err, "prepare schema")
	}
	return &Generator{pkg: opts.Package, schema: prepared}, nil
}

// Files returns generated sources keyed by file name.
func (g *Generator) Files() (map[string][]byte, error) {
	files := map[string][]byte{}
	for _, t := range g.schema.Types {
		files["tl_"+fileName(t.TLName)+"_gen.go"] = g.emitType(t)
	}
	for _, t := range g.schema.Functions {
		files["tl_"+fileName(t.TLName)+"_gen.go"] = g.emitType(t)
	}
	for _, c := range g.schema.Classes {
		files["tl_"+fileName(c.Name)+"_class_gen.go"] = g.emitClass(c)
		if c.Name == "Update" {
			files["tl_handlers_gen.go"] = g.emitHandlers(c)
		}
	}
	files["tl_client_gen.go"] = g.emitClient()
	files["tl_registry_gen.go"] = g.emitRegistry(g.schema)

	for name, src := range files {
		formatted, err := imports.Process(name, src, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "format %s", name)
		}
		files[name] = formatted
	}
	return files, nil
}

// WriteDir writes generated files to dir. If clean is set, previously generated
// files are removed first.
func (g *Generator) WriteDir(dir string, clean bool) error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	if clean {
		existing, err := filepath.Glob(filepath.Join(dir, "*_gen.go"))
		if err != nil {
			return errors.Wrap(err, "glob")
		}
		for _, name := range existing {
			if err := os.Remove(name); err != nil {
				return errors.Wrap(err, "remove")
			}
		}
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.ContainsRune(name, filepath.Separator) {
			return errors.Errorf("bad file name %q", name)
		}
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o644); err != nil {
			return errors.Wrapf(err, "write %s", name)
		}
	}
	return nil
}
