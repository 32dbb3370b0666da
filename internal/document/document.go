package document

// Document is the whole-tree handle for a figure document. It records the
// schema version the tree currently conforms to and the version it was
// originally authored at. The original version is carried through every
// migration step for provenance.
type Document struct {
	root            *Node
	version         int
	originalVersion int
}

// NewDocument wraps a root node that conforms to the given schema version.
func NewDocument(root *Node, version, originalVersion int) *Document {
	if root == nil {
		panic("root cannot be nil")
	}
	return &Document{root: root, version: version, originalVersion: originalVersion}
}

// Root returns the document's root element, or nil after DetachRoot.
func (d *Document) Root() *Node { return d.root }

// Version returns the schema version the document currently conforms to.
func (d *Document) Version() int { return d.version }

// OriginalVersion returns the schema version the document was first
// authored at.
func (d *Document) OriginalVersion() int { return d.originalVersion }

// DetachRoot removes and returns the root node, invalidating the document.
// Migration is destructive: the old document's tree is reused, not copied,
// so the caller must not touch the source document afterward.
func (d *Document) DetachRoot() *Node {
	r := d.root
	d.root = nil
	return r
}
