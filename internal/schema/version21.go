package schema

// Version 21 made the color axis's gradient bar placeable on any edge of
// the graph's data box, with configurable thickness and gap. The defaults
// reproduce the fixed right-edge layout of earlier versions, so migration
// is pure rebinding.
func newSchema21() Schema {
	prev := newSchema20()
	s := newVersion(21, prev)

	s.registry = map[string]*ElementDescriptor{
		tagZAxis: prev.Descriptor(tagZAxis).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrEdge, attrSize, attrGap)
			d.Defaults[attrEdge] = "right"
			d.Defaults[attrSize] = "0.2in"
			d.Defaults[attrGap] = "0.1in"
		}),
	}

	s.checks = map[string]attrCheck{
		tagZAxis + "/" + attrEdge: enumCheck([]string{"left", "right", "top", "bottom"}),
		tagZAxis + "/" + attrGap:  measureCheck(mcPhysical),
	}

	return s
}
