package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/pkg/fypml"
)

// Write serializes a document as indented XML with the version stamp ahead
// of the root element. Version 0 documents predate the stamp and are
// written without one, byte-compatible with what the oldest readers expect.
func Write(w io.Writer, doc *document.Document) error {
	if doc == nil || doc.Root() == nil {
		return fmt.Errorf("cannot serialize a document with no content: %w", fypml.ErrBadDocument)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if doc.Version() >= 1 {
		pi := document.ProcessingInstruction{
			Target:        fypml.RootTag,
			AppVersion:    schema.AppVersionFor(doc.Version()),
			SchemaVersion: doc.Version(),
		}
		if err := enc.EncodeToken(xml.ProcInst{Target: pi.Target, Inst: []byte(pi.String())}); err != nil {
			return err
		}
	}

	if err := writeElement(enc, doc.Root()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	// encoding/xml emits no trailing newline after the root close tag.
	_, err := io.WriteString(w, "\n")
	return err
}

// writeElement streams the subtree depth-first over an explicit stack, like
// the reader and the migration engine; nesting depth never reaches the call
// stack. A closing frame emits the end tag after the node's subtree.
func writeElement(enc *xml.Encoder, root *document.Node) error {
	type frame struct {
		node    *document.Node
		closing bool
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.closing {
			if err := enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: fr.node.Tag()}}); err != nil {
				return err
			}
			continue
		}

		start := xml.StartElement{Name: xml.Name{Local: fr.node.Tag()}}
		for _, name := range fr.node.ExplicitAttrs() {
			v, _ := fr.node.Attr(name)
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: v})
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if fr.node.Text() != "" {
			if err := enc.EncodeToken(xml.CharData(fr.node.Text())); err != nil {
				return err
			}
		}

		stack = append(stack, frame{node: fr.node, closing: true})
		kids := fr.node.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: kids[i]})
		}
	}
	return nil
}

// WriteFile writes a .fyp file to disk, creating or truncating it.
func WriteFile(path string, doc *document.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
