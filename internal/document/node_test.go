package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyplab/fypml/pkg/fypml"
)

// stubBinding is a minimal Binding for exercising tree invariants without
// pulling in the schema package.
type stubBinding struct {
	version     int
	tags        map[string]bool
	attrs       map[string]map[string]bool // tag -> attr set
	text        map[string]bool
	defaults    map[string]string // "tag/attr" -> default
	inheritable map[string]bool   // attr name -> inheritable
}

func (b *stubBinding) Version() int              { return b.version }
func (b *stubBinding) SupportsTag(t string) bool { return b.tags[t] }
func (b *stubBinding) PermitsAttribute(tag, attr string) bool {
	return b.attrs[tag][attr]
}
func (b *stubBinding) AllowsText(tag string) bool { return b.text[tag] }
func (b *stubBinding) DefaultFor(tag, attr string) (string, bool) {
	v, ok := b.defaults[tag+"/"+attr]
	return v, ok
}
func (b *stubBinding) IsInheritable(tag, attr string) bool { return b.inheritable[attr] }

func testBinding() *stubBinding {
	return &stubBinding{
		version: 7,
		tags:    map[string]bool{"fyp": true, "graph": true, "trace": true, "label": true},
		attrs: map[string]map[string]bool{
			"fyp":   {"strokeWidth": true, "strokeColor": true, "title": true},
			"graph": {"strokeWidth": true, "strokeColor": true, "clip": true},
			"trace": {"strokeWidth": true, "strokeColor": true, "mode": true},
			"label": {"title": true},
		},
		text: map[string]bool{"label": true},
		defaults: map[string]string{
			"fyp/strokeWidth": "0.01in",
			"fyp/strokeColor": "000000",
			"trace/mode":      "polyline",
		},
		inheritable: map[string]bool{"strokeWidth": true, "strokeColor": true},
	}
}

func TestNewNode_UnsupportedTag(t *testing.T) {
	_, err := NewNode("bogus", testBinding())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fypml.ErrUnsupportedTag))
}

func TestSetAttr_Unsupported(t *testing.T) {
	n, err := NewNode("trace", testBinding())
	require.NoError(t, err)

	err = n.SetAttr("nope", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fypml.ErrUnsupportedAttribute))
}

func TestAttrOrDefault(t *testing.T) {
	n, err := NewNode("trace", testBinding())
	require.NoError(t, err)

	assert.Equal(t, "polyline", n.AttrOrDefault("mode"))
	require.NoError(t, n.SetAttr("mode", "histogram"))
	assert.Equal(t, "histogram", n.AttrOrDefault("mode"))
}

func TestChildOrdering(t *testing.T) {
	b := testBinding()
	root, err := NewNode("fyp", b)
	require.NoError(t, err)

	g, _ := NewNode("graph", b)
	l1, _ := NewNode("label", b)
	l2, _ := NewNode("label", b)

	root.AppendChild(g)
	root.AppendChild(l2)
	root.InsertChild(1, l1)

	require.Equal(t, 3, root.ChildCount())
	assert.Same(t, g, root.Child(0))
	assert.Same(t, l1, root.Child(1))
	assert.Same(t, l2, root.Child(2))
	assert.Same(t, root, g.Parent())

	require.True(t, root.RemoveChild(l1))
	assert.Equal(t, 2, root.ChildCount())
	assert.Nil(t, l1.Parent())
	assert.False(t, root.RemoveChild(l1))
}

func TestEffectiveAttr_Inheritance(t *testing.T) {
	b := testBinding()
	root, _ := NewNode("fyp", b)
	g, _ := NewNode("graph", b)
	tr, _ := NewNode("trace", b)
	root.AppendChild(g)
	g.AppendChild(tr)

	// Nothing explicit anywhere: root default applies.
	assert.Equal(t, "0.01in", tr.EffectiveAttr("strokeWidth"))

	// Nearest ancestor with an explicit value wins.
	require.NoError(t, g.SetAttr("strokeWidth", "0.02in"))
	assert.Equal(t, "0.02in", tr.EffectiveAttr("strokeWidth"))

	// Self beats ancestors.
	require.NoError(t, tr.SetAttr("strokeWidth", "0.05in"))
	assert.Equal(t, "0.05in", tr.EffectiveAttr("strokeWidth"))
}

// TestRebind_HidesStaleAttrs verifies the migration-critical behavior: once a
// node is rebound to a version that no longer permits an attribute, the
// attribute becomes invisible even though it is still stored, and StripHidden
// removes it for good.
func TestRebind_HidesStaleAttrs(t *testing.T) {
	old := testBinding()
	n, err := NewNode("trace", old)
	require.NoError(t, err)
	require.NoError(t, n.SetAttr("mode", "multitrace"))

	next := testBinding()
	next.version = 8
	next.attrs["trace"] = map[string]bool{"strokeWidth": true, "strokeColor": true}

	require.NoError(t, n.Rebind(next))

	_, ok := n.Attr("mode")
	assert.False(t, ok, "stale attribute must be invisible after rebind")

	removed := n.StripHidden()
	assert.Equal(t, []string{"mode"}, removed)
}

func TestRetag(t *testing.T) {
	b := testBinding()
	n, err := NewNode("graph", b)
	require.NoError(t, err)

	next := testBinding()
	next.version = 8
	require.NoError(t, n.Retag("trace", next))
	assert.Equal(t, "trace", n.Tag())
	assert.Equal(t, 8, n.Binding().Version())

	err = n.Retag("bogus", next)
	assert.True(t, errors.Is(err, fypml.ErrUnsupportedTag))
}

func TestSetText(t *testing.T) {
	b := testBinding()
	l, _ := NewNode("label", b)
	require.NoError(t, l.SetText("hello"))
	assert.Equal(t, "hello", l.Text())

	g, _ := NewNode("graph", b)
	assert.Error(t, g.SetText("not allowed"))
}

func TestDocument_DetachRoot(t *testing.T) {
	b := testBinding()
	root, _ := NewNode("fyp", b)
	doc := NewDocument(root, 7, 3)

	assert.Equal(t, 7, doc.Version())
	assert.Equal(t, 3, doc.OriginalVersion())

	r := doc.DetachRoot()
	assert.Same(t, root, r)
	assert.Nil(t, doc.Root())
}
