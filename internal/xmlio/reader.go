package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/pkg/fypml"
)

// Read parses a FypML stream into a document bound to the schema version the
// stream declares. No migration happens here: a version 5 stream comes back
// as a version 5 document, and the caller decides whether to run the chain.
func Read(r io.Reader) (*document.Document, error) {
	dec := xml.NewDecoder(r)

	version := 0

	// Everything ahead of the root element: the version stamp lives here.
	var rootStart xml.StartElement
scan:
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("stream ended before the root element: %w", fypml.ErrNotFypML)
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target != fypml.RootTag {
				// The standard <?xml ...?> declaration, or someone else's
				// instruction. Not ours to interpret.
				continue
			}
			pi, err := document.ParseProcessingInstruction(t.Target, string(t.Inst))
			if err != nil {
				return nil, err
			}
			if pi.SchemaVersion < 1 || pi.SchemaVersion > schema.CurrentVersion {
				return nil, fmt.Errorf("processing instruction reports schema version %d, supported range is 1..%d: %w",
					pi.SchemaVersion, schema.CurrentVersion, fypml.ErrNotFypML)
			}
			version = pi.SchemaVersion
		case xml.StartElement:
			rootStart = t
			break scan
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("text content before the root element: %w", fypml.ErrNotFypML)
			}
		}
	}

	if rootStart.Name.Local != fypml.RootTag {
		return nil, fmt.Errorf("root element is %q, want %q: %w",
			rootStart.Name.Local, fypml.RootTag, fypml.ErrNotFypML)
	}

	s, err := schema.SchemaFor(version)
	if err != nil {
		return nil, err
	}

	root, err := readElement(dec, s, rootStart)
	if err != nil {
		return nil, err
	}
	return document.NewDocument(root, version, version), nil
}

// readElement builds the node for start and, recursively via an explicit
// stack, all of its descendants. The decoder is positioned just past the
// start tag on entry and just past the matching end tag on return.
func readElement(dec *xml.Decoder, s schema.Schema, start xml.StartElement) (*document.Node, error) {
	type frame struct {
		node *document.Node
		text strings.Builder
	}

	push := func(stack []*frame, se xml.StartElement) ([]*frame, error) {
		n, err := document.NewNode(se.Name.Local, s)
		if err != nil {
			return stack, err
		}
		for _, a := range se.Attr {
			if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
				continue
			}
			if err := n.SetAttr(a.Name.Local, a.Value); err != nil {
				return stack, err
			}
		}
		if len(stack) > 0 {
			stack[len(stack)-1].node.AppendChild(n)
		}
		return append(stack, &frame{node: n}), nil
	}

	stack, err := push(nil, start)
	if err != nil {
		return nil, err
	}
	root := stack[0].node

	for len(stack) > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if stack, err = push(stack, t); err != nil {
				return nil, err
			}
		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		case xml.EndElement:
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if text := strings.TrimSpace(fr.text.String()); text != "" {
				if err := fr.node.SetText(text); err != nil {
					return nil, fmt.Errorf("%v: %w", err, fypml.ErrNotFypML)
				}
			}
		}
	}
	return root, nil
}

// ReadFile reads a .fyp file from disk.
func ReadFile(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}
