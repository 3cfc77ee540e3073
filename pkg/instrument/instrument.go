// Package instrument attaches registry IDs and metadata to rendered elements.
//
// A Context is handed explicitly to the rendering layer. For every element it
// renders, the layer asks the Context for a Tag, either by (group, position)
// for repeated elements or by ID for static ones, and emits the Tag's
// attributes. Tags never fail: unassigned elements get the sentinel and carry
// no attributes.
package instrument

import (
	"context"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/devreg/pkg/registry"
)

// Attribute names emitted on instrumented elements.
const (
	AttrID          = "data-dev-id"
	AttrName        = "data-dev-name"
	AttrDescription = "data-dev-description"
)

// Context resolves instrumentation tags against a registry.
type Context struct {
	reg     *registry.Registry
	enabled bool
}

// New creates an enabled Context backed by reg.
func New(reg *registry.Registry) *Context {
	return &Context{reg: reg, enabled: true}
}

// Disabled returns a Context that never instruments anything.
func Disabled() *Context {
	return &Context{}
}

// Enabled reports whether tags produced by c carry attributes.
func (c *Context) Enabled() bool {
	return c != nil && c.enabled
}

// Registry returns the backing registry.
func (c *Context) Registry() *registry.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// For returns the tag for the element at index within group.
func (c *Context) For(group string, index int) Tag {
	if c == nil {
		return Tag{ID: registry.NoID}
	}
	e, _ := c.reg.Lookup(group, index)
	return Tag{ID: e.ID, Name: e.Name, Description: e.Description, enabled: c.enabled}
}

// Static returns the tag for a non-repeated element.
// IDs that are not registered degrade to the sentinel.
func (c *Context) Static(id registry.ID) Tag {
	if c == nil {
		return Tag{ID: registry.NoID}
	}
	e, ok := c.reg.Describe(id)
	if !ok {
		return Tag{ID: registry.NoID}
	}
	return Tag{ID: e.ID, Name: e.Name, Description: e.Description, enabled: c.enabled}
}

// Tag is the instrumentation metadata for one element instance.
type Tag struct {
	ID          registry.ID
	Name        string
	Description string
	enabled     bool
}

// Named returns a copy of t with caller-supplied metadata.
// Empty arguments keep the registry values.
func (t Tag) Named(name, description string) Tag {
	if name != "" {
		t.Name = name
	}
	if description != "" {
		t.Description = description
	}
	return t
}

// Instrumented reports whether the element should carry attributes.
func (t Tag) Instrumented() bool {
	return t.enabled && t.ID.Assigned()
}

// Attrs returns the element attributes for t, or an empty set when the
// element is not instrumented.
func (t Tag) Attrs() templ.Attributes {
	attrs := templ.Attributes{}
	if !t.Instrumented() {
		return attrs
	}
	attrs[AttrID] = t.ID.String()
	if t.Name != "" {
		attrs[AttrName] = t.Name
	}
	if t.Description != "" {
		attrs[AttrDescription] = t.Description
	}
	return attrs
}

// OrderedAttrs returns the same attributes as Attrs in a fixed order:
// id, name, description.
func (t Tag) OrderedAttrs() templ.OrderedAttributes {
	if !t.Instrumented() {
		return nil
	}
	attrs := templ.OrderedAttributes{{Key: AttrID, Value: t.ID.String()}}
	if t.Name != "" {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: AttrName, Value: t.Name})
	}
	if t.Description != "" {
		attrs = append(attrs, templ.KeyValue[string, any]{Key: AttrDescription, Value: t.Description})
	}
	return attrs
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying c.
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Context carried by ctx.
// A missing Context yields a disabled one so rendering still succeeds.
func FromContext(ctx context.Context) *Context {
	if c, ok := ctx.Value(contextKey{}).(*Context); ok && c != nil {
		return c
	}
	return Disabled()
}
