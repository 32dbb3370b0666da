// Package document implements the generic element tree underlying a FypML
// figure document.
//
// # Overview
//
// A document is a tree of Nodes. Each node carries:
//   - an element tag (immutable except through an explicit Retag)
//   - an ordered list of child nodes
//   - a map of explicitly set attributes (absent attributes take the bound
//     schema's declared default)
//   - optional text content, for tags whose descriptor allows it
//   - a back-reference to its parent, used for traversal and for resolving
//     inherited attribute values, never for ownership
//
// # Schema binding
//
// Every node is bound to a schema version through the Binding interface.
// The binding decides which tags exist, which attributes each tag permits,
// their defaults, and which attributes inherit from ancestors. The node
// enforces its invariants against the binding:
//
//   - the tag must be supported by the bound version
//   - SetAttr rejects attributes the tag does not permit
//   - Attr hides explicitly stored attributes that the current binding no
//     longer permits (they become invisible after a rebind, which is why
//     migration code must capture old values before rebinding)
//   - SetText rejects text on tags that do not allow it
//
// Rebinding a node to the next schema version is the pivot point of every
// migration step: the node's legal attribute and child sets change at that
// moment. StripHidden removes the now-illegal leftovers afterward.
//
// # Ownership
//
// A node is owned by exactly one parent. Whole subtrees are discarded by
// detaching them from the parent; nodes are never deleted individually.
// The tree is not safe for concurrent mutation.
package document
