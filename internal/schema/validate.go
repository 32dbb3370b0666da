package schema

import (
	"fmt"

	"github.com/fyplab/fypml/internal/document"
)

// ValidationResult contains the outcome of validating a whole document
// against a schema version. If Valid is false, Errors contains
// human-readable messages, each prefixed with the path of the offending
// node (e.g. "fyp/graph[0]/trace[2]").
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AddError appends an error message to the validation result and marks it
// as invalid.
func (v *ValidationResult) AddError(format string, args ...interface{}) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// HasErrors returns true if the validation result contains errors.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrorString returns all validation errors joined with semicolons.
// Returns empty string if no errors.
func (v *ValidationResult) ErrorString() string {
	if len(v.Errors) == 0 {
		return ""
	}
	result := v.Errors[0]
	for i := 1; i < len(v.Errors); i++ {
		result += "; " + v.Errors[i]
	}
	return result
}

// ValidateDocument checks every node of the document against the schema's
// attribute and structural validators: explicit attribute values must be
// well-formed, required attributes must be present, and children must
// satisfy the registry and positional constraints. Like the underlying
// predicates it never fails; the caller decides whether an invalid
// document blocks the load.
func ValidateDocument(s Schema, doc *document.Document) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}
	if doc == nil || doc.Root() == nil {
		result.AddError("document has no content")
		return result
	}

	type entry struct {
		node *document.Node
		path string
	}
	stack := []entry{{node: doc.Root(), path: doc.Root().Tag()}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := e.node

		desc := s.Descriptor(n.Tag())
		if desc == nil {
			result.AddError("%s: element %q is not supported by schema version %d", e.path, n.Tag(), s.Version())
			continue
		}

		for _, name := range n.ExplicitAttrs() {
			v, _ := n.Attr(name)
			if !s.IsValidAttributeValue(n, name, v) {
				result.AddError("%s: invalid value %q for attribute %q", e.path, v, name)
			}
		}
		for _, name := range desc.Required {
			if _, ok := n.Attr(name); !ok {
				result.AddError("%s: required attribute %q is not set", e.path, name)
			}
		}

		if !s.HasRequiredChildren(n) {
			result.AddError("%s: required children missing or misordered", e.path)
		}
		for i := n.ChildCount() - 1; i >= 0; i-- {
			c := n.Child(i)
			if !s.AllowsChildAt(n, c.Tag(), i) {
				result.AddError("%s: child %q not allowed at index %d", e.path, c.Tag(), i)
			}
			stack = append(stack, entry{node: c, path: fmt.Sprintf("%s/%s[%d]", e.path, c.Tag(), i)})
		}
	}
	return result
}
