package schema

import (
	"fmt"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/pkg/fypml"
)

// pending carries state that flows from a parent's rewrite to a specific
// later-visited descendant. It travels with each traversal frame, keeping
// the traversal reentrant: no migration state lives outside the stack.
type pending struct {
	// transparentFillEBar forces an error-bar child's fill transparent,
	// set when the parent trace lost an unfilled "filled" flag.
	transparentFillEBar bool

	// freezeSymbolFill, when non-empty, is the fill a symbol child was
	// inheriting before its parent trace got an explicit fillColor="none";
	// the symbol pins it so the parent's new fill cannot hollow it out.
	freezeSymbolFill string
}

// directive is a rewrite hook's instructions to the migration engine for
// the remainder of the current node's step.
type directive struct {
	// skip lists children freshly inserted by the hook in already
	// conformant form; the engine must not revisit them.
	skip []*document.Node

	// post holds attribute assignments that are only legal after the node
	// is rebound to the new version (setting them earlier would fail
	// validation against the old descriptor).
	post []attrAssign

	// childFlags is the pending state handed to each traversed child.
	childFlags pending
}

type attrAssign struct {
	name  string
	value string
}

func (d *directive) setPost(name, value string) {
	d.post = append(d.post, attrAssign{name: name, value: value})
}

func (d *directive) skipChild(c *document.Node) {
	d.skip = append(d.skip, c)
}

func (d *directive) skips(c *document.Node) bool {
	for _, s := range d.skip {
		if s == c {
			return true
		}
	}
	return false
}

// rewriteFunc is a version's node rewrite hook. It runs while the node is
// still bound to the predecessor version, so it can capture attribute and
// child state that becomes invisible once the node is rebound.
type rewriteFunc func(s Schema, n *document.Node, flags pending) (directive, error)

// MigrateFrom rewrites a predecessor-version document into this version,
// node by node, depth-first and in place. See the package comment for the
// step-by-step contract.
func (b *versionBase) MigrateFrom(doc *document.Document) (*document.Document, error) {
	if doc == nil || doc.Root() == nil {
		return nil, fmt.Errorf("migrating to schema version %d: document has no content: %w",
			b.version, fypml.ErrNotFypML)
	}
	if doc.Version() != b.version-1 {
		return nil, fmt.Errorf("cannot migrate a schema version %d document to version %d: %w",
			doc.Version(), b.version, fypml.ErrVersionMismatch)
	}

	// The version check above is the last point at which the source
	// document is intact; from here on the rewrite is destructive.
	root := doc.DetachRoot()

	type frame struct {
		node  *document.Node
		flags pending
	}

	// Iterative pre-order traversal: memory stays O(tree size) and large
	// documents cannot exhaust the call stack.
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var d directive
		if b.rewrite != nil {
			var err error
			d, err = b.rewrite(b.self, fr.node, fr.flags)
			if err != nil {
				return nil, fmt.Errorf("migrating element %q to schema version %d: %w",
					fr.node.Tag(), b.version, err)
			}
		}

		if err := fr.node.Rebind(b.self); err != nil {
			return nil, err
		}
		fr.node.StripHidden()

		for _, a := range d.post {
			if err := fr.node.SetAttr(a.name, a.value); err != nil {
				return nil, err
			}
		}

		kids := fr.node.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			c := kids[i]
			if d.skips(c) {
				continue
			}
			stack = append(stack, frame{node: c, flags: d.childFlags})
		}
	}

	return document.NewDocument(root, b.version, doc.OriginalVersion()), nil
}

// newConformantNode builds an element already bound to the target version,
// for insertion during a rewrite. Such nodes are listed in directive.skip
// so the engine does not re-migrate them.
func newConformantNode(s Schema, tag string) (*document.Node, error) {
	return document.NewNode(tag, s)
}
