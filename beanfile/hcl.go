package beanfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top-level structure of an HCL bean file.
type hclFile struct {
	Root  string     `hcl:"root"`
	Beans []*hclBean `hcl:"bean,block"`
}

type hclBean struct {
	ID    string    `hcl:"id,label"`
	Kind  string    `hcl:"kind"`
	Name  *string   `hcl:"name,optional"`
	Props cty.Value `hcl:"props,optional"`
	Refs  cty.Value `hcl:"refs,optional"`
}

// DecodeHCL decodes an HCL bean file. filename is used in diagnostics only.
func DecodeHCL(data []byte, filename string) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("beanfile: parse hcl %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("beanfile: decode hcl %s: %w", filename, diags)
	}

	doc := &Document{Root: parsed.Root, Beans: make([]Definition, 0, len(parsed.Beans))}
	for _, b := range parsed.Beans {
		def := Definition{ID: b.ID, Kind: b.Kind}
		if b.Name != nil {
			def.Name = *b.Name
		}

		props, err := ctyToMap(b.Props)
		if err != nil {
			return nil, fmt.Errorf("beanfile: bean %q props: %w", b.ID, err)
		}
		refs, err := ctyToMap(b.Refs)
		if err != nil {
			return nil, fmt.Errorf("beanfile: bean %q refs: %w", b.ID, err)
		}
		def.Props, def.Refs = props, refs

		doc.Beans = append(doc.Beans, def)
	}
	return doc, nil
}

func ctyToMap(v cty.Value) (map[string]any, error) {
	native, err := ctyToNative(v)
	if err != nil || native == nil {
		return nil, err
	}
	m, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %s", v.Type().FriendlyName())
	}
	return m, nil
}

// ctyToNative converts a cty.Value into the plain Go values YAML decoding
// produces: string, int, float64, bool, []any and map[string]any.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var i int
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("convert number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			nv, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			nv, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = nv
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
