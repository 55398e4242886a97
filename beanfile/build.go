package beanfile

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/sghaida/beaninit/bean"
)

// Graph is the result of Build: every defined bean, wired.
type Graph struct {
	// Root is the bean named by the document's root id.
	Root bean.Bean

	rootID string
	ids    []string
	beans  map[string]bean.Bean
	kinds  map[string]string
}

// RootID returns the id of Root.
func (g *Graph) RootID() string { return g.rootID }

// IDs returns the bean ids in document order.
func (g *Graph) IDs() []string { return append([]string(nil), g.ids...) }

// Bean returns the bean defined under id.
func (g *Graph) Bean(id string) (bean.Bean, bool) {
	b, ok := g.beans[id]
	return b, ok
}

// Kind returns the kind id was built from.
func (g *Graph) Kind(id string) string { return g.kinds[id] }

// Unreachable returns, in document order, the ids of beans that a pass from
// Root would never discover.
func (g *Graph) Unreachable() ([]string, error) {
	reached := make(map[bean.Bean]struct{}, len(g.beans))
	err := bean.Visit(g.Root, func(n *bean.Node) error {
		reached[n.Bean()] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out []string
	for _, id := range g.ids {
		if _, ok := reached[g.beans[id]]; !ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// Build validates doc, constructs every bean through kinds and wires the
// references between them.
//
// Construction happens in two phases. First each bean is resolved, named
// (when it has a SetBeanName method) and has its props decoded; then every
// reference is assigned through the Set function of the named field.
func Build(doc *Document, kinds *bean.KindRegistry) (*Graph, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		rootID: doc.Root,
		ids:    make([]string, 0, len(doc.Beans)),
		beans:  make(map[string]bean.Bean, len(doc.Beans)),
		kinds:  make(map[string]string, len(doc.Beans)),
	}

	for _, def := range doc.Beans {
		b, err := kinds.Resolve(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("beanfile: bean %q: %w", def.ID, err)
		}
		if named, ok := b.(interface{ SetBeanName(string) }); ok {
			named.SetBeanName(def.DisplayName())
		}
		if err := decodeProps(b, def.Props); err != nil {
			return nil, fmt.Errorf("beanfile: bean %q props: %w", def.ID, err)
		}

		g.ids = append(g.ids, def.ID)
		g.beans[def.ID] = b
		g.kinds[def.ID] = def.Kind
	}

	for _, def := range doc.Beans {
		if err := g.wire(def); err != nil {
			return nil, err
		}
	}

	g.Root = g.beans[doc.Root]
	return g, nil
}

func decodeProps(b bean.Bean, props map[string]any) error {
	if len(props) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           b,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(props)
}

func (g *Graph) wire(def Definition) error {
	if len(def.Refs) == 0 {
		return nil
	}

	names := make([]string, 0, len(def.Refs))
	for name := range def.Refs {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := g.beans[def.ID].ConfigurableFields()
	for _, name := range names {
		f, ok := bean.Lookup(fields, name)
		if !ok {
			return fmt.Errorf("beanfile: bean %q: %w %q", def.ID, ErrUnknownField, name)
		}
		if f.Set == nil {
			return fmt.Errorf("beanfile: bean %q: field %q cannot be assigned", def.ID, name)
		}

		v, err := g.resolve(def.Refs[name], f.Collection)
		if err != nil {
			return fmt.Errorf("beanfile: bean %q field %q: %w", def.ID, name, err)
		}
		if err := f.Set(v); err != nil {
			return fmt.Errorf("beanfile: bean %q: %w", def.ID, err)
		}
	}
	return nil
}

// resolve turns an id or a list of ids into the value Field.Set expects.
func (g *Graph) resolve(ref any, collection bool) (any, error) {
	switch r := ref.(type) {
	case nil:
		return nil, nil

	case string:
		b, err := g.lookup(r)
		if err != nil {
			return nil, err
		}
		if collection {
			return []bean.Bean{b}, nil
		}
		return b, nil

	case []any:
		if !collection {
			return nil, fmt.Errorf("a list of ids was given for a single reference")
		}
		out := make([]bean.Bean, 0, len(r))
		for i, item := range r {
			id, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: want an id, got %T", i, item)
			}
			b, err := g.lookup(id)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("want an id or a list of ids, got %T", ref)
	}
}

func (g *Graph) lookup(id string) (bean.Bean, error) {
	b, ok := g.beans[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRef, id)
	}
	return b, nil
}
