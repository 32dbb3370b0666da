package schema

import "github.com/fyplab/fypml/internal/document"

// Version 4 replaced the line element's endpoint and midpoint cap
// attributes with explicit shape children. A cap attribute could only
// express a fixed decoration at a fixed spot; a shape child can be any
// supported adornment anywhere along the line.
func newSchema4() Schema {
	prev := newSchema3()
	s := newVersion(4, prev)

	s.registry = map[string]*ElementDescriptor{
		tagLine: prev.Descriptor(tagLine).derive(func(d *ElementDescriptor) {
			d.Attributes = without(d.Attributes,
				attrP0Cap, attrP0CapSize, attrP1Cap, attrP1CapSize, attrMidCap, attrMidCapSize)
			for _, a := range []string{attrP0Cap, attrP0CapSize, attrP1Cap, attrP1CapSize, attrMidCap, attrMidCapSize} {
				delete(d.Defaults, a)
			}
			d.Children = append(d.Children, tagShape)
		}),
	}

	s.rewrite = rewriteV4
	return s
}

// lineCapSpec maps one legacy cap attribute pair to the location, along the
// line, of the shape child that replaces it. Locations are percentages of
// the line's extent; "0% 100%" sits on the first endpoint, "100% 100%" on
// the second, "50% 100%" at the midpoint.
type lineCapSpec struct {
	capAttr  string
	sizeAttr string
	loc      string
}

var lineCapSpecs = []lineCapSpec{
	{attrP0Cap, attrP0CapSize, "0% 100%"},
	{attrP1Cap, attrP1CapSize, "100% 100%"},
	{attrMidCap, attrMidCapSize, "50% 100%"},
}

func rewriteV4(s Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() != tagLine {
		return d, nil
	}

	// Capture the cap attributes before the rebind hides them; the engine
	// strips them from storage afterward.
	at := 0
	for _, spec := range lineCapSpecs {
		capVal := n.AttrOrDefault(spec.capAttr)
		if capVal == "" || capVal == "none" {
			continue
		}
		sh, err := newConformantNode(s, tagShape)
		if err != nil {
			return d, err
		}
		if err := sh.SetAttr(attrType, capVal); err != nil {
			return d, err
		}
		if err := sh.SetAttr(attrLoc, spec.loc); err != nil {
			return d, err
		}
		// Caps were always drawn with a solid outline, whatever the line's
		// own style; freeze that so the inherited line type cannot leak in.
		if err := sh.SetAttr(attrLineType, "solid"); err != nil {
			return d, err
		}
		// The old cap size defaults and the shape size default coincide, so
		// size is carried over only when it was explicitly set.
		if sz, ok := n.Attr(spec.sizeAttr); ok {
			if err := sh.SetAttr(attrSize, sz); err != nil {
				return d, err
			}
		}
		n.InsertChild(at, sh)
		at++
		d.skipChild(sh)
	}
	return d, nil
}
