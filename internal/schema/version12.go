package schema

// Version 12 extended every color attribute to accept an alpha channel
// (eight hex digits, AARRGGBB) and the literal "none" for full
// transparency, and gave the figure a background fill of its own. Existing
// six-digit values remain valid and render identically, so migration is
// pure rebinding.
func newSchema12() Schema {
	prev := newSchema11()
	s := newVersion(12, prev)
	s.alphaColors = true

	s.registry = map[string]*ElementDescriptor{
		tagFyp: prev.Descriptor(tagFyp).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrBkg)
			d.Defaults[attrBkg] = "FFFFFF"
		}),
	}

	s.checks = map[string]attrCheck{
		"*/" + attrBkg: colorCheck(),
	}

	return s
}
