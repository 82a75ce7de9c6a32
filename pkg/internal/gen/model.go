package gen

import (
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gotd/tl"
)

// kind of a field value.
type kind int

const (
	kindInt32 kind = iota
	kindInt53
	kindInt64
	kindDouble
	kindString
	kindBytes
	kindBool
	kindBare
	kindClass
	kindVector
)

// valueType describes how a schema type is represented in Go.
type valueType struct {
	Kind kind
	// Name is Go type name for kindBare and class name for kindClass.
	Name string
	Elem *valueType
}

var scalarTypes = map[string]kind{
	"int32":  kindInt32,
	"int53":  kindInt53,
	"int64":  kindInt64,
	"double": kindDouble,
	"string": kindString,
	"bytes":  kindBytes,
	"Bool":   kindBool,
}

// builtins are schema definitions describing primitive types.
var builtins = map[string]bool{
	"double":    true,
	"string":    true,
	"int32":     true,
	"int53":     true,
	"int64":     true,
	"bytes":     true,
	"boolFalse": true,
	"boolTrue":  true,
	"vector":    true,
}

// goType returns Go type of a value. Top-level bare objects are pointers.
func (v valueType) goType(top bool) string {
	switch v.Kind {
	case kindInt32:
		return "int32"
	case kindInt53, kindInt64:
		return "int64"
	case kindDouble:
		return "float64"
	case kindString:
		return "string"
	case kindBytes:
		return "[]byte"
	case kindBool:
		return "bool"
	case kindBare:
		if top {
			return "*" + v.Name
		}
		return v.Name
	case kindClass:
		return v.Name + "Class"
	case kindVector:
		return "[]" + v.Elem.goType(false)
	default:
		panic("unknown kind")
	}
}

type fieldDef struct {
	TLName string
	GoName string
	Doc    string
	Type   valueType
}

type typeDef struct {
	TLName     string
	GoName     string
	Doc        string
	Fields     []fieldDef
	Class      string // empty for singular classes
	IsFunction bool
	Result     valueType
}

type classDef struct {
	Name         string
	Doc          string
	Constructors []*typeDef
}

// schema is the prepared generator model.
type schema struct {
	Types     []*typeDef
	Functions []*typeDef
	Classes   []*classDef
}

func annotation(annotations []tl.Annotation, name string) string {
	for _, a := range annotations {
		if a.Name == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func buildSchema(s *tl.Schema) (*schema, error) {
	classCtors := map[string][]string{}
	for _, d := range s.Definitions {
		if d.Category != tl.CategoryType || builtins[d.Definition.Name] {
			continue
		}
		classCtors[d.Definition.Type.Name] = append(classCtors[d.Definition.Type.Name], d.Definition.Name)
	}
	singular := func(class string) bool {
		ctors := classCtors[class]
		return len(ctors) == 1 && strings.EqualFold(ctors[0], class)
	}

	var resolve func(t tl.Type) (valueType, error)
	resolve = func(t tl.Type) (valueType, error) {
		if strings.EqualFold(t.Name, "vector") && t.GenericArg != nil {
			elem, err := resolve(*t.GenericArg)
			if err != nil {
				return valueType{}, err
			}
			return valueType{Kind: kindVector, Elem: &elem}, nil
		}
		if k, ok := scalarTypes[t.Name]; ok {
			return valueType{Kind: k}, nil
		}
		if t.Name == "" {
			return valueType{}, errors.New("empty type name")
		}
		if lowerFirst(t.Name) == t.Name || singular(t.Name) {
			return valueType{Kind: kindBare, Name: goName(t.Name)}, nil
		}
		if _, ok := classCtors[t.Name]; !ok {
			return valueType{}, errors.Errorf("unknown type %q", t.Name)
		}
		return valueType{Kind: kindClass, Name: goName(t.Name)}, nil
	}

	out := &schema{}
	classes := map[string]*classDef{}
	for _, c := range s.Classes {
		classes[c.Name] = &classDef{Name: goName(c.Name), Doc: strings.TrimSpace(c.Description)}
	}
	for _, d := range s.Definitions {
		def := d.Definition
		if builtins[def.Name] {
			continue
		}
		t := &typeDef{
			TLName:     def.Name,
			GoName:     goName(def.Name),
			Doc:        annotation(d.Annotations, "description"),
			IsFunction: d.Category == tl.CategoryFunction,
		}
		for _, p := range def.Params {
			typ, err := resolve(p.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: field %s", def.Name, p.Name)
			}
			doc := annotation(d.Annotations, p.Name)
			if p.Name == "description" {
				doc = annotation(d.Annotations, "param_description")
			}
			t.Fields = append(t.Fields, fieldDef{
				TLName: p.Name,
				GoName: goName(p.Name),
				Doc:    doc,
				Type:   typ,
			})
		}
		if t.IsFunction {
			t.GoName += "Request"
			res, err := resolve(def.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: result", def.Name)
			}
			t.Result = res
			out.Functions = append(out.Functions, t)
			continue
		}
		className := def.Type.Name
		if !singular(className) {
			c, ok := classes[className]
			if !ok {
				c = &classDef{Name: goName(className)}
				classes[className] = c
			}
			c.Constructors = append(c.Constructors, t)
			t.Class = c.Name
		}
		out.Types = append(out.Types, t)
	}
	for _, c := range classes {
		if len(c.Constructors) > 0 {
			out.Classes = append(out.Classes, c)
		}
	}
	sort.Slice(out.Classes, func(i, j int) bool {
		return out.Classes[i].Name < out.Classes[j].Name
	})
	return out, nil
}
