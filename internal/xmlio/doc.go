// Package xmlio reads and writes FypML documents as XML.
//
// The reader is a token-stream pass over encoding/xml: it resolves the
// schema version first, from the <?fyp ...?> processing instruction ahead
// of the root element (absent instruction means version 0), then builds the
// element tree already bound to that version. Binding during the parse
// means an element or attribute unknown to the declared version is
// rejected at the exact position it appears.
//
// The writer emits the processing instruction followed by the indented
// element tree, with attributes in sorted order so output is deterministic.
package xmlio
