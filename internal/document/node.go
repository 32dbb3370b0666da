package document

import (
	"fmt"
	"sort"

	"github.com/fyplab/fypml/pkg/fypml"
)

// Binding exposes the slice of a schema version's element registry that the
// tree needs to enforce its own invariants. The schema package implements it.
type Binding interface {
	// Version returns the schema version number of the binding.
	Version() int

	// SupportsTag reports whether the version defines the element tag.
	SupportsTag(tag string) bool

	// PermitsAttribute reports whether the tag's descriptor lists the
	// attribute name.
	PermitsAttribute(tag, attr string) bool

	// AllowsText reports whether the tag's descriptor allows text content.
	AllowsText(tag string) bool

	// DefaultFor returns the declared default value for a (tag, attribute)
	// pair, and whether one is declared.
	DefaultFor(tag, attr string) (string, bool)

	// IsInheritable reports whether an absent attribute takes its effective
	// value from the nearest ancestor that sets it.
	IsInheritable(tag, attr string) bool
}

// Node is one XML element instance in a figure document tree.
type Node struct {
	tag      string
	binding  Binding
	parent   *Node
	children []*Node
	attrs    map[string]string
	text     string
}

// NewNode creates an element with the given tag bound to the given schema
// version. The tag must be supported by the binding.
func NewNode(tag string, b Binding) (*Node, error) {
	if b == nil {
		panic("binding cannot be nil")
	}
	if !b.SupportsTag(tag) {
		return nil, fmt.Errorf("element %q in schema version %d: %w", tag, b.Version(), fypml.ErrUnsupportedTag)
	}
	return &Node{tag: tag, binding: b, attrs: make(map[string]string)}, nil
}

// Tag returns the element tag.
func (n *Node) Tag() string { return n.tag }

// Binding returns the schema version the node is currently bound to.
func (n *Node) Binding() Binding { return n.binding }

// Parent returns the node's parent, or nil for a detached or root node.
func (n *Node) Parent() *Node { return n.parent }

// Root walks parent links to the tree root.
func (n *Node) Root() *Node {
	p := n
	for p.parent != nil {
		p = p.parent
	}
	return p
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil if the index is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the ordered child list. The returned slice is shared with
// the node and must not be modified by the caller.
func (n *Node) Children() []*Node { return n.children }

// FirstChildWithTag returns the first child carrying the given tag, or nil.
func (n *Node) FirstChildWithTag(tag string) *Node {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// AppendChild adds a child at the end of the child list. The child must be
// detached. Child-placement legality is the structural validator's concern,
// not the tree's.
func (n *Node) AppendChild(c *Node) {
	n.InsertChild(len(n.children), c)
}

// InsertChild adds a detached child at the given index, shifting later
// children right. Indexes outside [0, ChildCount] are clamped.
func (n *Node) InsertChild(i int, c *Node) {
	if c == nil {
		panic("child cannot be nil")
	}
	if c.parent != nil {
		panic("child already attached to a parent")
	}
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.parent = n
}

// RemoveChild detaches a child from the node, preserving the order of the
// remaining children. Returns false if c is not a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			c.parent = nil
			return true
		}
	}
	return false
}

// Attr returns the explicitly set value of an attribute. An attribute that
// is stored but not permitted for the tag under the current binding is
// reported as absent: after a rebind, stale attributes become invisible.
func (n *Node) Attr(name string) (string, bool) {
	if !n.binding.PermitsAttribute(n.tag, name) {
		return "", false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// AttrOrDefault returns the explicit value of an attribute, or the bound
// schema's declared default when the attribute is absent.
func (n *Node) AttrOrDefault(name string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	v, _ := n.binding.DefaultFor(n.tag, name)
	return v
}

// EffectiveAttr resolves the effective value of an attribute, honoring
// inheritance: the nearest ancestor (self included) with an explicit value
// wins; otherwise the declared default applies, preferring the node's own
// descriptor and falling back to the root's.
func (n *Node) EffectiveAttr(name string) string {
	for p := n; p != nil; p = p.parent {
		if !p.binding.PermitsAttribute(p.tag, name) {
			continue
		}
		if p != n && !p.binding.IsInheritable(p.tag, name) {
			continue
		}
		if v, ok := p.attrs[name]; ok {
			return v
		}
	}
	if v, ok := n.binding.DefaultFor(n.tag, name); ok {
		return v
	}
	root := n.Root()
	if v, ok := root.binding.DefaultFor(root.tag, name); ok {
		return v
	}
	return ""
}

// SetAttr sets an attribute's explicit value. The attribute must be
// permitted for the tag under the current binding.
func (n *Node) SetAttr(name, value string) error {
	if !n.binding.PermitsAttribute(n.tag, name) {
		return fmt.Errorf("attribute %q on element %q in schema version %d: %w",
			name, n.tag, n.binding.Version(), fypml.ErrUnsupportedAttribute)
	}
	n.attrs[name] = value
	return nil
}

// RemoveAttr deletes the explicit value of an attribute, if any. It removes
// the stored value even when the current binding no longer permits the name.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// ExplicitAttrs returns the names of all explicitly set attributes that are
// visible under the current binding, sorted for deterministic serialization.
func (n *Node) ExplicitAttrs() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		if n.binding.PermitsAttribute(n.tag, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// StripHidden removes every stored attribute that the current binding does
// not permit for the tag, and clears text content if the tag no longer
// allows it. Returns the removed attribute names. Migration engines call
// this right after rebinding a node to the new schema version.
func (n *Node) StripHidden() []string {
	var removed []string
	for name := range n.attrs {
		if !n.binding.PermitsAttribute(n.tag, name) {
			removed = append(removed, name)
			delete(n.attrs, name)
		}
	}
	if n.text != "" && !n.binding.AllowsText(n.tag) {
		n.text = ""
	}
	sort.Strings(removed)
	return removed
}

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// SetText sets the node's text content. The tag must allow text under the
// current binding.
func (n *Node) SetText(s string) error {
	if s != "" && !n.binding.AllowsText(n.tag) {
		return fmt.Errorf("element %q in schema version %d does not allow text content", n.tag, n.binding.Version())
	}
	n.text = s
	return nil
}

// Rebind binds the node to a different schema version. The tag must be
// supported by the new binding; stale attributes are NOT removed here, so
// that migration code can still reason about what StripHidden will discard.
func (n *Node) Rebind(b Binding) error {
	if b == nil {
		panic("binding cannot be nil")
	}
	if !b.SupportsTag(n.tag) {
		return fmt.Errorf("element %q in schema version %d: %w", n.tag, b.Version(), fypml.ErrUnsupportedTag)
	}
	n.binding = b
	return nil
}

// Retag changes the node's tag and binding in one step, reusing the node's
// identity, position, attributes and children. Used when a deprecated
// element is replaced wholesale by a successor (the old tag typically does
// not exist in the new version, and vice versa).
func (n *Node) Retag(tag string, b Binding) error {
	if b == nil {
		panic("binding cannot be nil")
	}
	if !b.SupportsTag(tag) {
		return fmt.Errorf("element %q in schema version %d: %w", tag, b.Version(), fypml.ErrUnsupportedTag)
	}
	n.tag = tag
	n.binding = b
	return nil
}
