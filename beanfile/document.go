// Package beanfile builds bean graphs from declarative YAML or HCL files.
//
// A file lists bean definitions, each with an id, a kind resolved through a
// bean.KindRegistry, scalar props and references to other beans:
//
//	root: main
//	beans:
//	  - id: main
//	    kind: pipeline
//	    props: {workers: 2}
//	    refs:
//	      source: camera
//	      stages: [blur, detect]
//
// The HCL form uses one block per bean:
//
//	root = "main"
//
//	bean "main" {
//	  kind  = "pipeline"
//	  props = { workers = 2 }
//	  refs  = { source = "camera", stages = ["blur", "detect"] }
//	}
//
// Build creates every bean before wiring any reference, so definitions may
// appear in any order and references may form cycles.
package beanfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRef is returned for a reference to an id that is not defined.
	ErrUnknownRef = errors.New("beanfile: unknown bean id")
	// ErrUnknownField is returned for a reference naming a field the bean does not declare.
	ErrUnknownField = errors.New("beanfile: unknown field")
	// ErrInvalidDocument is returned by Validate.
	ErrInvalidDocument = errors.New("beanfile: invalid document")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("beanfile: unsupported format")
)

// Document is a decoded bean file.
type Document struct {
	Root  string       `yaml:"root"`
	Beans []Definition `yaml:"beans"`
}

// Definition describes one bean.
//
// Props are decoded onto the bean with mapstructure. Each Refs value is an id
// or a list of ids, keyed by the field name declared in the bean's schema.
type Definition struct {
	ID    string         `yaml:"id"`
	Kind  string         `yaml:"kind"`
	Name  string         `yaml:"name,omitempty"`
	Props map[string]any `yaml:"props,omitempty"`
	Refs  map[string]any `yaml:"refs,omitempty"`
}

// DisplayName returns Name, or ID when Name is empty.
func (d Definition) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Validate checks the structure of the document without resolving kinds.
func (doc *Document) Validate() error {
	var problems []string

	if strings.TrimSpace(doc.Root) == "" {
		problems = append(problems, "root is empty")
	}

	seen := make(map[string]struct{}, len(doc.Beans))
	for i, def := range doc.Beans {
		if strings.TrimSpace(def.ID) == "" {
			problems = append(problems, fmt.Sprintf("bean #%d has no id", i))
			continue
		}
		if _, dup := seen[def.ID]; dup {
			problems = append(problems, fmt.Sprintf("duplicate id %q", def.ID))
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Kind) == "" {
			problems = append(problems, fmt.Sprintf("bean %q has no kind", def.ID))
		}
	}

	if doc.Root != "" {
		if _, ok := seen[doc.Root]; !ok {
			problems = append(problems, fmt.Sprintf("root %q is not defined", doc.Root))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}
	return nil
}
