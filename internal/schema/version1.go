package schema

// Version 1 introduced the document processing instruction. The element
// set is unchanged; migrating a version 0 document is pure rebinding.
func newSchema1() Schema {
	return newVersion(1, newSchema0())
}
