package schema

import "github.com/fyplab/fypml/internal/document"

// Version 13 promoted the symbol attribute pair on traces and functions
// into a dedicated child element, so a symbol can carry its own fill and
// stroke styling. A trace now has exactly two children, symbol then error
// bar; a function has exactly one, its symbol.
//
// Symbols were unconditionally solid-stroked before this change. The
// symbol element's descriptor simply omits strokePat, so no frozen value
// is needed to keep a dashed parent from leaking into its symbol.
func newSchema13() Schema {
	prev := newSchema12()
	s := newVersion(13, prev)

	s.registry = map[string]*ElementDescriptor{
		tagSymbol: {
			Tag:        tagSymbol,
			Attributes: []string{attrType, attrSize, attrTitle, attrFillColor, attrStrokeColor, attrStrokeWidth},
			Defaults:   map[string]string{attrType: "none", attrSize: "0.1in", attrTitle: ""},
			Inherited:  []string{attrFillColor, attrStrokeColor, attrStrokeWidth},
		},
		tagTrace: prev.Descriptor(tagTrace).derive(func(d *ElementDescriptor) {
			d.Attributes = without(d.Attributes, attrSymbol, attrSymbolSize)
			delete(d.Defaults, attrSymbol)
			delete(d.Defaults, attrSymbolSize)
			d.Children = append([]string{tagSymbol}, d.Children...)
		}),
		tagFunction: prev.Descriptor(tagFunction).derive(func(d *ElementDescriptor) {
			d.Attributes = without(d.Attributes, attrSymbol, attrSymbolSize)
			delete(d.Defaults, attrSymbol)
			delete(d.Defaults, attrSymbolSize)
			d.Children = append(d.Children, tagSymbol)
		}),
	}

	s.checks = map[string]attrCheck{
		tagSymbol + "/" + attrType: enumCheck(symbolChoices),
	}

	s.rules = map[string]*childRule{
		tagTrace: {
			required: traceRequiredChildrenV13,
			childAt:  traceChildAtV13,
		},
		tagFunction: {
			required: functionRequiredChildrenV13,
			childAt:  functionChildAtV13,
		},
	}

	s.rewrite = rewriteV13
	return s
}

// traceRequiredChildrenV13: symbol at index 0, exactly one ebar at index 1.
func traceRequiredChildrenV13(_ Schema, n *document.Node) bool {
	return n.ChildCount() == 2 &&
		n.Child(0).Tag() == tagSymbol &&
		n.Child(1).Tag() == tagEBar
}

func traceChildAtV13(_ Schema, _ *document.Node, childTag string, index int) bool {
	switch childTag {
	case tagSymbol:
		return index == 0
	case tagEBar:
		return index == 1
	}
	return false
}

func functionRequiredChildrenV13(_ Schema, n *document.Node) bool {
	return n.ChildCount() == 1 && n.Child(0).Tag() == tagSymbol
}

func functionChildAtV13(_ Schema, _ *document.Node, childTag string, index int) bool {
	return childTag == tagSymbol && index == 0
}

func rewriteV13(s Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() != tagTrace && n.Tag() != tagFunction {
		return d, nil
	}

	sym, err := newConformantNode(s, tagSymbol)
	if err != nil {
		return d, err
	}
	// Carry the old attribute values over only where explicitly set; the
	// symbol element's defaults match the old attribute defaults, so an
	// untouched pair migrates to an all-default child.
	if v, ok := n.Attr(attrSymbol); ok {
		if err := sym.SetAttr(attrType, v); err != nil {
			return d, err
		}
	}
	if v, ok := n.Attr(attrSymbolSize); ok {
		if err := sym.SetAttr(attrSize, v); err != nil {
			return d, err
		}
	}
	n.InsertChild(0, sym)
	d.skipChild(sym)
	return d, nil
}
