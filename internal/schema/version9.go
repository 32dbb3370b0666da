package schema

import "github.com/fyplab/fypml/internal/document"

// Version 9 brought heat-mapped data displays: a color axis (zaxis) became
// the graph's mandatory third child, and the heatmap element rendered a
// data matrix through it.
//
// The migration inserts a zaxis spanning 0..100 into every graph. Ideally
// the range would be derived from the actual data sets rendered in the
// graph, but that would mean parsing every set's raw text during
// migration; the cost was judged not worth it, so the fixed range is a
// documented imperfection and users adjust it after upgrading.
func newSchema9() Schema {
	prev := newSchema8()
	s := newVersion(9, prev)

	s.registry = map[string]*ElementDescriptor{
		tagZAxis: {
			Tag:      tagZAxis,
			Children: []string{tagTicks, tagLabel},
			Attributes: join(styleText, []string{attrStrokeColor, attrStrokeWidth,
				attrStart, attrEnd, attrTitle, attrLabelOffset, attrSpacer, attrHide}),
			Required: []string{attrStart, attrEnd},
			Defaults: map[string]string{
				attrTitle: "", attrLabelOffset: "0.05in", attrSpacer: "0.3in", attrHide: "false",
			},
			Inherited: join(styleText, []string{attrStrokeColor, attrStrokeWidth}),
		},
		tagHeatmap: {
			Tag:        tagHeatmap,
			Attributes: []string{attrSrc, attrSmooth},
			Required:   []string{attrSrc},
			Defaults:   map[string]string{attrSmooth: "false"},
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagZAxis, tagHeatmap)
		}),
	}

	s.checks = map[string]attrCheck{
		tagZAxis + "/" + attrLabelOffset: measureCheck(mcPhysical),
		tagHeatmap + "/" + attrSmooth:    boolCheck(),
	}

	s.rules = map[string]*childRule{
		tagGraph: {
			required: graphRequiredChildrenV9,
			childAt:  graphChildAtV9,
		},
	}

	s.rewrite = rewriteV9
	return s
}

// graphRequiredChildrenV9: axes at 0 and 1, color axis at 2.
func graphRequiredChildrenV9(_ Schema, n *document.Node) bool {
	return n.ChildCount() >= 3 &&
		n.Child(0).Tag() == tagAxis &&
		n.Child(1).Tag() == tagAxis &&
		n.Child(2).Tag() == tagZAxis
}

func graphChildAtV9(_ Schema, _ *document.Node, childTag string, index int) bool {
	switch childTag {
	case tagAxis:
		return index < 2
	case tagZAxis:
		return index == 2
	}
	return index >= 3
}

func rewriteV9(s Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() != tagGraph {
		return d, nil
	}
	z, err := newConformantNode(s, tagZAxis)
	if err != nil {
		return d, err
	}
	if err := z.SetAttr(attrStart, "0"); err != nil {
		return d, err
	}
	if err := z.SetAttr(attrEnd, "100"); err != nil {
		return d, err
	}
	n.InsertChild(2, z)
	d.skipChild(z)
	return d, nil
}
