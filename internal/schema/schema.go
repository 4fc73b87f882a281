// Package schema walks the property tree of OpenAPI component schemas.
package schema

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/siddhu225/interview-prep/pkg/tree"
)

// Context is a schema together with its dotted property path.
type Context struct {
	Schema *openapi3.Schema
	Name   string

	parent *Context
}

// refersBack reports whether s is ctx's schema or one of its ancestors.
func (ctx *Context) refersBack(s *openapi3.Schema) bool {
	for c := ctx; c != nil; c = c.parent {
		if c.Schema == s {
			return true
		}
	}
	return false
}

type options struct {
	check bool
}

type Option func(*options)

// WithCheck makes Walk fail with tree.ErrNotTree when a schema refers back
// to one of its ancestors, instead of silently cutting the recursion.
func WithCheck(check bool) Option {
	return func(o *options) {
		o.check = check
	}
}

// Load reads an OpenAPI document, resolving external references.
func Load(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document %s: %w", path, err)
	}
	return doc, nil
}

// Walk returns the schemas of doc in the given traversal order. A property
// whose schema is already on its own ancestor path is not descended into.
func Walk(doc *openapi3.T, order tree.Order, opts ...Option) (iter.Seq[Context], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var schemas openapi3.Schemas
	if doc.Components != nil {
		schemas = doc.Components.Schemas
	}
	roots := toContext(schemas)

	if o.check {
		if err := checkRecursion(roots); err != nil {
			return nil, err
		}
	}

	switch order {
	case tree.DepthOrder:
		return tree.PreOrderFunc(roots, children), nil
	case tree.BreadthOrder:
		return tree.LevelOrderFunc(roots, children), nil
	default:
		return nil, fmt.Errorf("unknown traversal order %q", order)
	}
}

// Paths returns the dotted path of every schema of doc in the given order.
func Paths(doc *openapi3.T, order tree.Order, opts ...Option) ([]string, error) {
	seq, err := Walk(doc, order, opts...)
	if err != nil {
		return nil, err
	}
	paths := []string{}
	for ctx := range seq {
		paths = append(paths, ctx.Name)
	}
	return paths, nil
}

func checkRecursion(roots iter.Seq[Context]) error {
	for ctx := range tree.PreOrderFunc(roots, children) {
		for _, propName := range slices.Sorted(maps.Keys(ctx.Schema.Properties)) {
			propRef := ctx.Schema.Properties[propName]
			if propRef == nil || propRef.Value == nil {
				continue
			}
			if ctx.refersBack(propRef.Value) {
				return fmt.Errorf("schema %s.%s refers back to an ancestor: %w", ctx.Name, propName, tree.ErrNotTree)
			}
		}
	}
	return nil
}

func toContext(schemas openapi3.Schemas) iter.Seq[Context] {
	return func(yield func(Context) bool) {
		for _, name := range slices.Sorted(maps.Keys(schemas)) {
			ref := schemas[name]
			if ref == nil || ref.Value == nil {
				continue
			}
			if !yield(Context{Schema: ref.Value, Name: name}) {
				return
			}
		}
	}
}

func children(ctx Context) iter.Seq[Context] {
	return func(yield func(Context) bool) {
		for _, propName := range slices.Sorted(maps.Keys(ctx.Schema.Properties)) {
			propRef := ctx.Schema.Properties[propName]
			if propRef == nil || propRef.Value == nil || ctx.refersBack(propRef.Value) {
				continue
			}
			child := Context{
				Schema: propRef.Value,
				Name:   ctx.Name + "." + propName,
				parent: &ctx,
			}
			if !yield(child) {
				return
			}
		}
	}
}
