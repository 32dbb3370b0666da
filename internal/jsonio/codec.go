package jsonio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/pkg/fypml"
)

// element is the JSON form of one node. Empty collections are omitted to
// keep the output compact.
type element struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*element        `json:"children,omitempty"`
}

// envelope is the top-level object: the root element's fields plus the
// schema version stamp.
type envelope struct {
	SchemaVersion int `json:"schemaVersion"`
	element
}

// Encode writes the document as JSON. With indent true the output is
// pretty-printed for human consumption; otherwise it is a single line.
func Encode(w io.Writer, doc *document.Document, indent bool) error {
	if doc == nil || doc.Root() == nil {
		return fmt.Errorf("cannot encode a document with no content: %w", fypml.ErrBadDocument)
	}
	env := envelope{
		SchemaVersion: doc.Version(),
		element:       *toElement(doc.Root()),
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(&env)
}

// toElement converts the subtree over an explicit stack, like the writer
// and the migration engine; depth stays off the call stack.
func toElement(root *document.Node) *element {
	type frame struct {
		node   *document.Node
		parent *element
	}
	var out *element
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := fr.node
		e := &element{Tag: n.Tag(), Text: n.Text()}
		if names := n.ExplicitAttrs(); len(names) > 0 {
			e.Attrs = make(map[string]string, len(names))
			for _, name := range names {
				v, _ := n.Attr(name)
				e.Attrs[name] = v
			}
		}
		if fr.parent == nil {
			out = e
		} else {
			fr.parent.Children = append(fr.parent.Children, e)
		}

		// Pushed in reverse so siblings pop in document order.
		kids := n.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: kids[i], parent: e})
		}
	}
	return out
}

// Decode reads the JSON form, rebuilds the tree bound to the declared
// schema version, and migrates the result to the current version.
func Decode(r io.Reader, log fypml.Logger) (*document.Document, error) {
	var env envelope
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding JSON document: %v: %w", err, fypml.ErrNotFypML)
	}
	if env.SchemaVersion < 0 || env.SchemaVersion > schema.CurrentVersion {
		return nil, fmt.Errorf("JSON document reports schema version %d, supported range is 0..%d: %w",
			env.SchemaVersion, schema.CurrentVersion, fypml.ErrNotFypML)
	}
	if env.Tag != fypml.RootTag {
		return nil, fmt.Errorf("JSON root element is %q, want %q: %w", env.Tag, fypml.RootTag, fypml.ErrNotFypML)
	}

	s, err := schema.SchemaFor(env.SchemaVersion)
	if err != nil {
		return nil, err
	}
	root, err := fromElement(&env.element, s)
	if err != nil {
		return nil, err
	}
	doc := document.NewDocument(root, env.SchemaVersion, env.SchemaVersion)
	return schema.MigrateToCurrent(doc, log)
}

func fromElement(root *element, s schema.Schema) (*document.Node, error) {
	type frame struct {
		src    *element
		parent *document.Node
	}
	var out *document.Node
	stack := []frame{{src: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e := fr.src
		n, err := document.NewNode(e.Tag, s)
		if err != nil {
			return nil, err
		}
		for name, v := range e.Attrs {
			if err := n.SetAttr(name, v); err != nil {
				return nil, err
			}
		}
		if e.Text != "" {
			if err := n.SetText(e.Text); err != nil {
				return nil, fmt.Errorf("%v: %w", err, fypml.ErrNotFypML)
			}
		}
		if fr.parent == nil {
			out = n
		} else {
			fr.parent.AppendChild(n)
		}

		for i := len(e.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{src: e.Children[i], parent: n})
		}
	}
	return out, nil
}
