package gen

import (
	"strings"
)

func (g *Generator) emitClient() []byte {
	w := &writer{}
	w.preamble(g.pkg, "context", "", tdjsonImport)
	w.line("")
	w.comment("Function is a TDLib method.")
	w.open("type Function interface {")
	w.line("tdjson.Object")
	w.line("tdlibFunction()")
	w.close("}")
	w.line("")
	w.comment("Invoker can invoke raw TDLib methods.")
	w.open("type Invoker interface {")
	w.line("Invoke(ctx context.Context, input Function, output tdjson.TDLibDecoder) error")
	w.close("}")
	w.line("")
	w.comment("Client implements TDLib API client.")
	w.open("type Client struct {")
	w.line("rpc Invoker")
	w.close("}")
	w.line("")
	w.comment("NewClient creates new Client.")
	w.open("func NewClient(invoker Invoker) *Client {")
	w.line("return &Client{rpc: invoker}")
	w.close("}")
	w.line("")
	w.comment("Invoker returns Invoker used by this client.")
	w.open("func (c *Client) Invoker() Invoker {")
	w.line("return c.rpc")
	w.close("}")
	return w.Bytes()
}

func (g *Generator) emitRegistry(s *schema) []byte {
	w := &writer{}
	w.preamble(g.pkg, "fmt", "", tdjsonImport)
	w.line("")
	all := append(append([]*typeDef{}, s.Types...), s.Functions...)

	w.comment("TypesConstructorMap maps all schema type names to their constructors.")
	w.open("func TypesConstructorMap() map[string]func() tdjson.Object {")
	w.line("m := make(map[string]func() tdjson.Object, %d)", len(all))
	for _, t := range all {
		w.line("m[%sTypeName] = func() tdjson.Object { return &%s{} }", t.GoName, t.GoName)
	}
	w.line("return m")
	w.close("}")
	w.line("")

	w.comment("ClassConstructorsMap maps class names to type names of their constructors.")
	w.open("func ClassConstructorsMap() map[string][]string {")
	w.line("m := make(map[string][]string, %d)", len(s.Classes))
	for _, c := range s.Classes {
		names := make([]string, 0, len(c.Constructors))
		for _, t := range c.Constructors {
			names = append(names, t.GoName+"TypeName")
		}
		w.line("m[%q] = []string{%s}", c.Name, strings.Join(names, ", "))
	}
	w.line("return m")
	w.close("}")
	w.line("")

	w.line("var typesConstructors = TypesConstructorMap()")
	w.line("")
	w.comment("DecodeObject decodes any schema object using its @type.")
	w.open("func DecodeObject(buf tdjson.Decoder) (tdjson.Object, error) {")
	w.line("id, err := buf.FindTypeID()")
	w.open("if err != nil {")
	w.line("return nil, err")
	w.close("}")
	w.line("ctor, ok := typesConstructors[id]")
	w.open("if !ok {")
	w.line("return nil, fmt.Errorf(\"unable to decode object: %%w\", &tdjson.UnknownTypeError{Class: \"Object\", Type: id})")
	w.close("}")
	w.line("v := ctor()")
	w.open("if err := v.DecodeTDLibJSON(buf); err != nil {")
	w.line("return nil, err")
	w.close("}")
	w.line("return v, nil")
	w.close("}")
	return w.Bytes()
}

func (g *Generator) emitHandlers(c *classDef) []byte {
	w := &writer{}
	w.preamble(g.pkg, "context")
	w.line("")
	w.comment("UpdateHandler handles updates.")
	w.open("type UpdateHandler interface {")
	w.line("Handle(ctx context.Context, update UpdateClass) error")
	w.close("}")
	w.line("")
	w.line("type handler = func(context.Context, UpdateClass) error")
	w.line("")
	w.comment("UpdateDispatcher dispatches updates to handlers registered by update type.")
	w.open("type UpdateDispatcher struct {")
	w.line("handlers map[string]handler")
	w.line("fallback handler")
	w.close("}")
	w.line("")
	w.line("var _ UpdateHandler = UpdateDispatcher{}")
	w.line("")
	w.comment("NewUpdateDispatcher constructs new UpdateDispatcher.")
	w.open("func NewUpdateDispatcher() UpdateDispatcher {")
	w.line("return UpdateDispatcher{handlers: map[string]handler{}}")
	w.close("}")
	w.line("")
	w.comment("Handle implements UpdateHandler.")
	w.open("func (u UpdateDispatcher) Handle(ctx context.Context, update UpdateClass) error {")
	w.open("if update == nil {")
	w.line("return nil")
	w.close("}")
	w.open("if h, ok := u.handlers[update.TypeName()]; ok {")
	w.line("return h(ctx, update)")
	w.close("}")
	w.open("if u.fallback != nil {")
	w.line("return u.fallback(ctx, update)")
	w.close("}")
	w.line("return nil")
	w.close("}")
	w.line("")
	w.comment("OnFallback sets handler for updates without a dedicated handler.")
	w.open("func (u *UpdateDispatcher) OnFallback(h func(ctx context.Context, update UpdateClass) error) {")
	w.line("u.fallback = h")
	w.close("}")
	for _, t := range c.Constructors {
		name := strings.TrimPrefix(t.GoName, "Update")
		if name == "" || name == t.GoName {
			continue
		}
		w.line("")
		w.comment(name + "Handler is a " + t.TLName + " event handler.")
		w.line("type %sHandler func(ctx context.Context, update *%s) error", name, t.GoName)
		w.line("")
		w.comment("On" + name + " sets " + t.TLName + " handler.")
		w.open("func (u UpdateDispatcher) On%s(handler %sHandler) {", name, name)
		w.open("u.handlers[%sTypeName] = func(ctx context.Context, update UpdateClass) error {", t.GoName)
		w.line("return handler(ctx, update.(*%s))", t.GoName)
		w.close("}")
		w.close("}")
	}
	return w.Bytes()
}
