package schema

// Version 5 added data clipping on graphs and a label gap on tick sets.
// Both default to the prior behavior, so migration is pure rebinding.
func newSchema5() Schema {
	prev := newSchema4()
	s := newVersion(5, prev)

	s.registry = map[string]*ElementDescriptor{
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrClip)
			d.Defaults[attrClip] = "false"
		}),
		tagTicks: prev.Descriptor(tagTicks).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrGap)
			d.Defaults[attrGap] = "0.05in"
		}),
	}

	s.checks = map[string]attrCheck{
		tagGraph + "/" + attrClip: boolCheck(),
		tagTicks + "/" + attrGap:  measureCheck(mcPhysical),
	}

	return s
}
