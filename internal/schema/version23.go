package schema

// Version 23 is the current schema: a free-form note on the figure (not
// rendered, kept with the document) and an optional box around the legend.
// The boxColor default of "none" keeps old legends borderless.
//
// When adding version 24, bump CurrentVersion in chain.go and register the
// constructor there.
func newSchema23() Schema {
	prev := newSchema22()
	s := newVersion(23, prev)

	s.registry = map[string]*ElementDescriptor{
		tagFyp: prev.Descriptor(tagFyp).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrNote)
			d.Defaults[attrNote] = ""
		}),
		tagLegend: prev.Descriptor(tagLegend).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrBoxColor)
			d.Defaults[attrBoxColor] = "none"
		}),
	}

	s.checks = map[string]attrCheck{
		tagFyp + "/" + attrNote:        anyCheck(),
		tagLegend + "/" + attrBoxColor: colorCheck(),
	}

	return s
}
