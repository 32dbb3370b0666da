package schema

import "github.com/fyplab/fypml/internal/document"

// Version 16 retired the boolean filled flag on traces and rasters. Fill
// styling now goes through the fillColor attribute alone, with "none"
// meaning no fill at all. The flag only ever had rendering effect on
// histogram and errorband traces and on histogram rasters; only those
// migrate an unfilled flag to an explicit fillColor="none" (the inherited
// fill would otherwise paint them). Everything else just drops the flag.
//
// An unfilled trace must also keep its error bar unfilled, and its symbol
// must keep the fill it was inheriting before the trace went transparent.
// Both children are visited after their parent, so the decisions travel
// with the traversal frame rather than through any shared state.
func newSchema16() Schema {
	prev := newSchema15()
	s := newVersion(16, prev)

	s.registry = map[string]*ElementDescriptor{
		tagTrace: prev.Descriptor(tagTrace).derive(func(d *ElementDescriptor) {
			d.Attributes = without(d.Attributes, attrFilled)
			delete(d.Defaults, attrFilled)
		}),
		tagRaster: prev.Descriptor(tagRaster).derive(func(d *ElementDescriptor) {
			d.Attributes = without(d.Attributes, attrFilled)
			delete(d.Defaults, attrFilled)
		}),
		tagEBar: prev.Descriptor(tagEBar).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrFillColor)
			d.Inherited = append(d.Inherited, attrFillColor)
		}),
	}

	s.rewrite = rewriteV16
	return s
}

func rewriteV16(_ Schema, n *document.Node, flags pending) (directive, error) {
	var d directive
	switch n.Tag() {
	case tagTrace:
		mode := n.AttrOrDefault(attrMode)
		if mode != "histogram" && mode != "errorband" {
			break
		}
		if n.AttrOrDefault(attrFilled) != "true" {
			// Captured before the rebind, so this is the fill the symbol
			// was drawn with while the trace still had it.
			d.childFlags.freezeSymbolFill = n.EffectiveAttr(attrFillColor)
			d.setPost(attrFillColor, "none")
			d.childFlags.transparentFillEBar = true
		}
	case tagRaster:
		if n.AttrOrDefault(attrMode) == "histogram" && n.AttrOrDefault(attrFilled) != "true" {
			d.setPost(attrFillColor, "none")
		}
	case tagEBar:
		if flags.transparentFillEBar {
			d.setPost(attrFillColor, "none")
		}
	case tagSymbol:
		if flags.freezeSymbolFill != "" {
			if _, ok := n.Attr(attrFillColor); !ok {
				d.setPost(attrFillColor, flags.freezeSymbolFill)
			}
		}
	}
	return d, nil
}
