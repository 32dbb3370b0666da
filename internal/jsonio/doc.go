// Package jsonio converts FypML documents to and from a JSON interchange
// form: one object mirroring the root element, plus an integer
// schemaVersion field at the top level. Decoding reconstructs the tree at
// the declared version and then runs the migration chain, so a decoded
// document is always current.
package jsonio
