package gen

import "strings"

// sentence terminates doc with a period, otherwise gofmt renders a single
// line paragraph as a heading.
func sentence(doc string) string {
	if strings.HasSuffix(doc, ".") {
		return doc
	}
	return doc + "."
}

func (g *Generator) emitClass(c *classDef) []byte {
	w := &writer{}
	w.preamble(g.pkg, "fmt", "", tdjsonImport)
	w.line("")

	w.comment(c.Name + "Class represents " + c.Name + " generic type.")
	if c.Doc != "" {
		w.line("//")
		w.comment(sentence(c.Doc))
	}
	w.line("//")
	w.comment("Possible constructors:")
	for _, t := range c.Constructors {
		w.comment("  - " + t.GoName)
	}
	w.open("type %sClass interface {", c.Name)
	w.line("tdjson.Object")
	w.line("%sClass()", lowerFirst(c.Name))
	w.close("}")
	w.line("")

	w.comment("DecodeTDLibJSON" + c.Name + " implements TDLib JSON de-serialization for " + c.Name + "Class.")
	w.comment("A JSON null decodes to nil.")
	w.open("func DecodeTDLibJSON%s(buf tdjson.Decoder) (%sClass, error) {", c.Name, c.Name)
	w.open("if buf.IsNull() {")
	w.line("return nil, buf.Null()")
	w.close("}")
	w.line("id, err := buf.FindTypeID()")
	w.open("if err != nil {")
	w.line("return nil, err")
	w.close("}")
	w.line("switch id {")
	for _, t := range c.Constructors {
		w.line("case %sTypeName:", t.GoName)
		w.indent++
		w.line("v := %s{}", t.GoName)
		w.open("if err := v.DecodeTDLibJSON(buf); err != nil {")
		w.line("return nil, fmt.Errorf(\"unable to decode %sClass: %%w\", err)", c.Name)
		w.close("}")
		w.line("return &v, nil")
		w.indent--
	}
	w.line("default:")
	w.indent++
	w.line("return nil, fmt.Errorf(\"unable to decode %sClass: %%w\", &tdjson.UnknownTypeError{Class: %q, Type: id})", c.Name, c.Name)
	w.indent--
	w.line("}")
	w.close("}")
	w.line("")

	box := c.Name + "Box"
	w.comment(box + " helps to encode and decode " + c.Name + "Class.")
	w.open("type %s struct {", box)
	w.line("%s %sClass", c.Name, c.Name)
	w.close("}")
	w.line("")
	w.comment("DecodeTDLibJSON implements tdjson.TDLibDecoder for " + box + ".")
	w.open("func (b *%s) DecodeTDLibJSON(buf tdjson.Decoder) error {", box)
	w.open("if b == nil {")
	w.line("return fmt.Errorf(\"unable to decode %s to nil\")", box)
	w.close("}")
	w.line("v, err := DecodeTDLibJSON%s(buf)", c.Name)
	w.open("if err != nil {")
	w.line("return fmt.Errorf(\"unable to decode boxed value: %%w\", err)")
	w.close("}")
	w.line("b.%s = v", c.Name)
	w.line("return nil")
	w.close("}")
	w.line("")
	w.comment("EncodeTDLibJSON implements tdjson.TDLibEncoder for " + box + ".")
	w.open("func (b *%s) EncodeTDLibJSON(buf tdjson.Encoder) error {", box)
	w.open("if b == nil || b.%s == nil {", c.Name)
	w.line("return fmt.Errorf(\"unable to encode %sClass as nil\")", c.Name)
	w.close("}")
	w.line("return b.%s.EncodeTDLibJSON(buf)", c.Name)
	w.close("}")
	return w.Bytes()
}
