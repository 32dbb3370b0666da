package schema

import (
	"github.com/fyplab/fypml/internal/document"
)

// Schema is one version of the FypML schema: element registry, attribute
// and structural validators, and the single-step migration from the
// predecessor version. Implementations are effectively immutable
// configuration; the chain driver constructs one instance per migration
// step.
type Schema interface {
	document.Binding

	// Descriptor returns the registry entry for a tag, or nil when the tag
	// is not supported by this version. Callers that cannot tolerate nil
	// should check SupportsTag first.
	Descriptor(tag string) *ElementDescriptor

	// IsValidAttributeValue reports whether the candidate value is
	// well-formed for the (element tag, attribute) pair. It never fails:
	// invalid input simply yields false, and the caller decides whether
	// that is fatal.
	IsValidAttributeValue(n *document.Node, attr, value string) bool

	// HasRequiredChildren reports whether the node's children satisfy the
	// tag's required-children and ordering constraints.
	HasRequiredChildren(n *document.Node) bool

	// AllowsChildAt reports whether a child with the given tag may appear
	// at the given index of the node's child list.
	AllowsChildAt(n *document.Node, childTag string, index int) bool

	// MigrateFrom transforms a document conforming to the predecessor
	// version into one conforming to this version. The operation is
	// destructive and single-use: the old document's root is detached and
	// reused, and the old document must not be touched afterward. A
	// document whose version is not exactly one less than this version is
	// a fatal input error.
	MigrateFrom(doc *document.Document) (*document.Document, error)

	// Predecessor returns the schema version this one delegates to, or nil
	// for the base version.
	Predecessor() Schema

	// validAttr is the delegation internal behind IsValidAttributeValue:
	// outer is the version the lookup started at, so checks shared down
	// the chain can consult version-wide capabilities (alpha colors).
	validAttr(outer Schema, n *document.Node, attr, value string) bool

	// structRule is the delegation internal behind the structural
	// validator: it returns the nearest child rule for a tag, or nil.
	structRule(tag string) *childRule

	// allowsAlphaColors reports whether color attributes of this version
	// accept the eight-digit alpha form and the "none" token.
	allowsAlphaColors() bool
}

// attrCheck validates one (tag, attribute) pair. The outer schema is the
// version the validation was invoked on, not the version that registered
// the check.
type attrCheck func(outer Schema, n *document.Node, value string) bool

// childRule holds a tag's positional child constraints. A nil member means
// "no constraint beyond registry membership".
type childRule struct {
	required func(outer Schema, n *document.Node) bool
	childAt  func(outer Schema, n *document.Node, childTag string, index int) bool
}

// versionBase carries the shared delegation machinery of every schema
// version. A version with no behavioral overrides is a bare versionBase
// configured with its registry delta; versions with migration logic supply
// a rewrite hook.
type versionBase struct {
	version int
	prev    Schema
	// self is the outermost Schema value, set once by the constructor so
	// that shared code can rebind nodes to the full version object.
	self Schema

	// registry lists only tags whose descriptor changed or is new at this
	// version; removed shadows tags dropped at this version.
	registry map[string]*ElementDescriptor
	removed  map[string]bool

	// checks lists only (tag, attr) validators introduced or changed at
	// this version. Keys are "tag/attr"; "*/attr" matches any tag.
	checks map[string]attrCheck

	// rules lists only tags whose positional child constraints changed at
	// this version.
	rules map[string]*childRule

	// alphaColors is set from version 12 on.
	alphaColors bool

	// rewrite is the version's node rewrite hook; nil means migration is
	// pure rebinding.
	rewrite rewriteFunc
}

func (b *versionBase) Version() int { return b.version }

func (b *versionBase) Predecessor() Schema { return b.prev }

func (b *versionBase) allowsAlphaColors() bool { return b.alphaColors }

// Descriptor consults the local registry first and falls through to the
// predecessor on a miss. A removal shadows the predecessor's entry.
func (b *versionBase) Descriptor(tag string) *ElementDescriptor {
	if d, ok := b.registry[tag]; ok {
		return d
	}
	if b.removed[tag] {
		return nil
	}
	if b.prev != nil {
		return b.prev.Descriptor(tag)
	}
	return nil
}

func (b *versionBase) SupportsTag(tag string) bool {
	return b.Descriptor(tag) != nil
}

func (b *versionBase) PermitsAttribute(tag, attr string) bool {
	d := b.Descriptor(tag)
	return d != nil && d.PermitsAttribute(attr)
}

func (b *versionBase) AllowsText(tag string) bool {
	d := b.Descriptor(tag)
	return d != nil && d.AllowsText
}

func (b *versionBase) DefaultFor(tag, attr string) (string, bool) {
	d := b.Descriptor(tag)
	if d == nil {
		return "", false
	}
	v, ok := d.Defaults[attr]
	return v, ok
}

func (b *versionBase) IsInheritable(tag, attr string) bool {
	d := b.Descriptor(tag)
	return d != nil && d.IsInherited(attr)
}

func (b *versionBase) IsValidAttributeValue(n *document.Node, attr, value string) bool {
	return b.validAttr(b.self, n, attr, value)
}

func (b *versionBase) validAttr(outer Schema, n *document.Node, attr, value string) bool {
	if f, ok := b.checks[n.Tag()+"/"+attr]; ok {
		return f(outer, n, value)
	}
	if f, ok := b.checks["*/"+attr]; ok {
		return f(outer, n, value)
	}
	if b.prev != nil {
		return b.prev.validAttr(outer, n, attr, value)
	}
	return false
}

func (b *versionBase) structRule(tag string) *childRule {
	if r, ok := b.rules[tag]; ok {
		return r
	}
	if b.prev != nil {
		return b.prev.structRule(tag)
	}
	return nil
}

// HasRequiredChildren applies the nearest child rule for the node's tag;
// tags without a rule have no required children.
func (b *versionBase) HasRequiredChildren(n *document.Node) bool {
	r := b.structRule(n.Tag())
	if r == nil || r.required == nil {
		return true
	}
	return r.required(b.self, n)
}

// AllowsChildAt checks registry membership, then any positional rule.
func (b *versionBase) AllowsChildAt(n *document.Node, childTag string, index int) bool {
	d := b.Descriptor(n.Tag())
	if d == nil || !d.PermitsChild(childTag) {
		return false
	}
	r := b.structRule(n.Tag())
	if r == nil || r.childAt == nil {
		return true
	}
	return r.childAt(b.self, n, childTag, index)
}
