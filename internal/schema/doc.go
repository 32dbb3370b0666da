// Package schema implements the versioned FypML schema chain: per-version
// element registries, attribute-value validators, structural validators, the
// single-step migration engines, and the chain driver that upgrades any
// historical document to the current schema version.
//
// # Versioned delegation
//
// Each schema version is a near-stateless object built by layered override:
// version N's registry and validator tables only list what changed at N.
// Lookups that miss locally delegate to version N-1's object through an
// explicit predecessor reference. A tag removed at version N is shadowed:
// it is reported unsupported even though the predecessor still lists it.
//
// # Migration
//
// MigrateFrom performs a destructive, in-place, depth-first rewrite of a
// version N-1 document into a version N document. The traversal is
// iterative (explicit stack) so memory is bounded by tree size rather than
// recursion depth. For each node the engine:
//
//  1. Runs the version's rewrite hook while the node is still bound to the
//     old version, so the hook can capture attribute and child state that
//     becomes invisible after rebinding.
//  2. Rebinds the node to the new version and strips attributes and text
//     the new descriptor no longer permits.
//  3. Applies attribute values that are only legal under the new
//     descriptor.
//  4. Pushes the node's children, skipping children the hook freshly
//     inserted in already-conformant form.
//
// State that flows from a parent's rewrite to a later-visited child (such
// as forcing an error-bar child's fill transparent) travels as typed
// per-frame flags on the traversal stack, never as shared mutable fields.
//
// Migration never changes how a valid document renders, only how it is
// expressed. Where a good default cannot reproduce the old appearance, the
// rewrite sets the attribute explicitly to the value that does.
//
// # Validation
//
// Validators are pure predicates: an invalid value yields false, never an
// error. Whether an invalid value or a structural violation blocks a
// document load is the caller's policy decision.
package schema
