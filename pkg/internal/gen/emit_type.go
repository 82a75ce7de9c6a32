package gen

import (
	"strconv"
)

const tdjsonImport = "go.mau.fi/gotdlib/pkg/tdjson"

// putMethod returns tdjson.Encoder method for scalar kinds.
var putMethod = map[kind]string{
	kindInt32:  "PutInt32",
	kindInt53:  "PutInt53",
	kindInt64:  "PutLong",
	kindDouble: "PutDouble",
	kindString: "PutString",
	kindBytes:  "PutBytes",
	kindBool:   "PutBool",
}

// decodeMethod returns tdjson.Decoder method for scalar kinds.
var decodeMethod = map[kind]string{
	kindInt32:  "Int32",
	kindInt53:  "Int53",
	kindInt64:  "Long",
	kindDouble: "Double",
	kindString: "Str",
	kindBytes:  "Base64",
	kindBool:   "Bool",
}

func depthSuffix(depth int) string {
	if depth == 0 {
		return ""
	}
	return strconv.Itoa(depth)
}

func (g *Generator) emitType(t *typeDef) []byte {
	w := &writer{}
	imports := []string{"fmt", "", tdjsonImport}
	if t.IsFunction {
		imports = []string{"context", "fmt", "", tdjsonImport}
	}
	w.preamble(g.pkg, imports...)
	w.line("")

	recv := receiverName(t.GoName)
	kindName := "type"
	if t.IsFunction {
		kindName = "function"
	}
	w.comment(t.GoName + " represents TL " + kindName + " `" + t.TLName + "`.")
	if t.Doc != "" {
		w.line("//")
		w.comment(t.Doc)
	}
	w.open("type %s struct {", t.GoName)
	w.line("tdjson.Meta")
	for _, f := range t.Fields {
		w.line("")
		doc := f.Doc
		if doc == "" {
			doc = f.GoName + " field of " + t.TLName
		}
		w.comment(doc)
		w.line("%s %s", f.GoName, f.Type.goType(true))
	}
	w.close("}")
	w.line("")

	w.comment(t.GoName + "TypeName is name of type in TDLib schema.")
	w.line("const %sTypeName = %q", t.GoName, t.TLName)
	w.line("")
	w.comment("Ensuring interfaces in compile-time for " + t.GoName + ".")
	w.line("var _ tdjson.Object = (*%s)(nil)", t.GoName)
	if t.Class != "" {
		w.line("var _ %sClass = (*%s)(nil)", t.Class, t.GoName)
	}
	if t.IsFunction {
		w.line("var _ Function = (*%s)(nil)", t.GoName)
	}
	w.line("")

	w.comment("TypeName returns name of type in TDLib schema.")
	w.open("func (*%s) TypeName() string {", t.GoName)
	w.line("return %sTypeName", t.GoName)
	w.close("}")
	w.line("")

	if t.Class != "" {
		w.open("func (*%s) %sClass() {", t.GoName, lowerFirst(t.Class))
		w.close("}")
		w.line("")
	}
	if t.IsFunction {
		w.open("func (*%s) tdlibFunction() {", t.GoName)
		w.close("}")
		w.line("")
	}

	g.emitEncode(w, t, recv)
	g.emitDecode(w, t, recv)
	g.emitGetters(w, t, recv)
	g.emitBuilder(w, t)
	if t.IsFunction {
		g.emitClientMethod(w, t)
	}
	return w.Bytes()
}

func (g *Generator) emitEncode(w *writer, t *typeDef, recv string) {
	w.comment("EncodeTDLibJSON implements tdjson.TDLibEncoder.")
	w.open("func (%s *%s) EncodeTDLibJSON(b tdjson.Encoder) error {", recv, t.GoName)
	w.open("if %s == nil {", recv)
	w.line("return fmt.Errorf(\"can't encode %s as nil\")", t.TLName)
	w.close("}")
	w.line("b.ObjStart()")
	w.line("b.PutID(%sTypeName)", t.GoName)
	w.line("b.PutMeta(%s.Meta)", recv)
	for _, f := range t.Fields {
		expr := recv + "." + f.GoName
		switch f.Type.Kind {
		case kindBare, kindClass:
			w.open("if %s != nil {", expr)
			w.line("b.FieldStart(%q)", f.TLName)
			g.emitEncodeValue(w, t, f, expr, f.Type, 0)
			w.close("}")
		default:
			w.line("b.FieldStart(%q)", f.TLName)
			g.emitEncodeValue(w, t, f, expr, f.Type, 0)
		}
	}
	w.line("b.ObjEnd()")
	w.line("return nil")
	w.close("}")
	w.line("")
}

func (g *Generator) emitEncodeValue(w *writer, t *typeDef, f fieldDef, expr string, v valueType, depth int) {
	prefix := "unable to encode " + t.TLName + ": field " + f.TLName
	switch v.Kind {
	case kindBare, kindClass:
		if depth > 0 {
			idx := "idx" + depthSuffix(depth-1)
			if v.Kind == kindClass {
				w.open("if %s == nil {", expr)
				w.line("return fmt.Errorf(\"%s element with index %%d is nil\", %s)", prefix, idx)
				w.close("}")
			}
			w.open("if err := %s.EncodeTDLibJSON(b); err != nil {", expr)
			w.line("return fmt.Errorf(\"%s element with index %%d: %%w\", %s, err)", prefix, idx)
			w.close("}")
			return
		}
		w.open("if err := %s.EncodeTDLibJSON(b); err != nil {", expr)
		w.line("return fmt.Errorf(\"%s: %%w\", err)", prefix)
		w.close("}")
	case kindVector:
		suffix := depthSuffix(depth)
		idx := "_"
		if v.Elem.Kind == kindBare || v.Elem.Kind == kindClass {
			idx = "idx" + suffix
		}
		w.line("b.ArrStart()")
		w.open("for %s, v%s := range %s {", idx, suffix, expr)
		g.emitEncodeValue(w, t, f, "v"+suffix, *v.Elem, depth+1)
		w.close("}")
		w.line("b.ArrEnd()")
	default:
		w.line("b.%s(%s)", putMethod[v.Kind], expr)
	}
}

func (g *Generator) emitDecode(w *writer, t *typeDef, recv string) {
	w.comment("DecodeTDLibJSON implements tdjson.TDLibDecoder.")
	w.open("func (%s *%s) DecodeTDLibJSON(b tdjson.Decoder) error {", recv, t.GoName)
	w.open("if %s == nil {", recv)
	w.line("return fmt.Errorf(\"can't decode %s to nil\")", t.TLName)
	w.close("}")
	w.open("return b.Obj(func(b tdjson.Decoder, key []byte) error {")
	w.line("switch string(key) {")
	w.line("case tdjson.TypeField:")
	w.indent++
	w.open("if err := b.ConsumeID(%sTypeName); err != nil {", t.GoName)
	w.line("return fmt.Errorf(\"unable to decode %s: %%w\", err)", t.TLName)
	w.close("}")
	w.indent--
	w.line("case tdjson.ExtraField, tdjson.ClientIDField:")
	w.indent++
	w.line("return b.DecodeMeta(key, &%s.Meta)", recv)
	w.indent--
	for _, f := range t.Fields {
		w.line("case %q:", f.TLName)
		w.indent++
		if f.Type.Kind == kindBare {
			w.open("if b.IsNull() {")
			w.line("return b.Null()")
			w.close("}")
		}
		prefix := "unable to decode " + t.TLName + ": field " + f.TLName
		g.emitDecodeValue(w, f.Type, 0, prefix, func(value string) {
			if f.Type.Kind == kindBare {
				w.line("%s.%s = &%s", recv, f.GoName, value)
				return
			}
			w.line("%s.%s = %s", recv, f.GoName, value)
		})
		w.indent--
	}
	w.line("default:")
	w.indent++
	w.line("return b.Skip()")
	w.indent--
	w.line("}")
	w.line("return nil")
	w.close("})")
	w.close("}")
	w.line("")
}

// emitDecodeValue decodes value of v into variable and calls assign with it.
func (g *Generator) emitDecodeValue(w *writer, v valueType, depth int, prefix string, assign func(value string)) {
	value := "value" + depthSuffix(depth)
	errReturn := func() {
		if depth == 0 {
			w.line("return fmt.Errorf(\"%s: %%w\", err)", prefix)
			return
		}
		w.line("return err")
	}
	switch v.Kind {
	case kindBare:
		w.line("var %s %s", value, v.Name)
		w.open("if err := %s.DecodeTDLibJSON(b); err != nil {", value)
		errReturn()
		w.close("}")
	case kindClass:
		w.line("%s, err := DecodeTDLibJSON%s(b)", value, v.Name)
		w.open("if err != nil {")
		errReturn()
		w.close("}")
	case kindVector:
		w.line("var %s %s", value, v.goType(false))
		w.open("if err := b.Arr(func(b tdjson.Decoder) error {")
		g.emitDecodeValue(w, *v.Elem, depth+1, prefix, func(elem string) {
			w.line("%s = append(%s, %s)", value, value, elem)
		})
		w.line("return nil")
		w.close("}); err != nil {")
		w.indent++
		errReturn()
		w.indent--
		w.line("}")
	default:
		w.line("%s, err := b.%s()", value, decodeMethod[v.Kind])
		w.open("if err != nil {")
		errReturn()
		w.close("}")
	}
	assign(value)
}

func (g *Generator) emitGetters(w *writer, t *typeDef, recv string) {
	for _, f := range t.Fields {
		w.comment("Get" + f.GoName + " returns value of " + f.GoName + " field.")
		w.open("func (%s *%s) Get%s() (value %s) {", recv, t.GoName, f.GoName, f.Type.goType(true))
		w.open("if %s == nil {", recv)
		w.line("return")
		w.close("}")
		w.line("return %s.%s", recv, f.GoName)
		w.close("}")
		w.line("")
	}
}

func (g *Generator) emitBuilder(w *writer, t *typeDef) {
	name := t.GoName + "Builder"
	w.comment(name + " builds " + t.GoName + ".")
	w.open("type %s struct {", name)
	w.line("inner %s", t.GoName)
	w.close("}")
	w.line("")
	w.comment("New" + name + " returns a builder of " + t.GoName + " with a fresh @extra.")
	w.open("func New%s() *%s {", name, name)
	w.line("return &%s{inner: %s{Meta: tdjson.NewMeta()}}", name, t.GoName)
	w.close("}")
	w.line("")
	for _, f := range t.Fields {
		w.comment(f.GoName + " sets value of " + f.GoName + " field.")
		w.open("func (b *%s) %s(value %s) *%s {", name, f.GoName, f.Type.goType(true), name)
		w.line("b.inner.%s = value", f.GoName)
		w.line("return b")
		w.close("}")
		w.line("")
	}
	w.comment("ClientID sets @client_id of the built object.")
	w.open("func (b *%s) ClientID(value int32) *%s {", name, name)
	w.line("b.inner.ClientID = value")
	w.line("return b")
	w.close("}")
	w.line("")
	w.comment("Build returns the built " + t.GoName + ".")
	w.open("func (b *%s) Build() *%s {", name, t.GoName)
	w.line("v := b.inner")
	w.line("return &v")
	w.close("}")
}

func (g *Generator) emitClientMethod(w *writer, t *typeDef) {
	method := t.GoName[:len(t.GoName)-len("Request")]
	w.line("")
	switch {
	case t.Result.Kind == kindBare && t.Result.Name == "Ok":
		w.comment(method + " invokes method " + t.TLName + " returning error if any.")
	default:
		w.comment(method + " invokes method " + t.TLName + " returning result or error.")
	}
	if t.Doc != "" {
		w.comment(t.Doc)
	}

	params := "ctx context.Context"
	request := "request"
	if len(t.Fields) > 0 {
		params += ", request *" + t.GoName
	}
	switch {
	case t.Result.Kind == kindBare && t.Result.Name == "Ok":
		w.open("func (c *Client) %s(%s) error {", method, params)
		w.line("var ok Ok")
		if len(t.Fields) == 0 {
			w.line("%s := &%s{}", request, t.GoName)
		}
		w.open("if err := c.rpc.Invoke(ctx, %s, &ok); err != nil {", request)
		w.line("return err")
		w.close("}")
		w.line("return nil")
		w.close("}")
	case t.Result.Kind == kindBare:
		w.open("func (c *Client) %s(%s) (*%s, error) {", method, params, t.Result.Name)
		w.line("var result %s", t.Result.Name)
		if len(t.Fields) == 0 {
			w.line("%s := &%s{}", request, t.GoName)
		}
		w.open("if err := c.rpc.Invoke(ctx, %s, &result); err != nil {", request)
		w.line("return nil, err")
		w.close("}")
		w.line("return &result, nil")
		w.close("}")
	default:
		w.open("func (c *Client) %s(%s) (%sClass, error) {", method, params, t.Result.Name)
		w.line("var result %sBox", t.Result.Name)
		if len(t.Fields) == 0 {
			w.line("%s := &%s{}", request, t.GoName)
		}
		w.open("if err := c.rpc.Invoke(ctx, %s, &result); err != nil {", request)
		w.line("return nil, err")
		w.close("}")
		w.line("return result.%s, nil", t.Result.Name)
		w.close("}")
	}
}
