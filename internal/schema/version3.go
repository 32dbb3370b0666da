package schema

// Version 3 added the function element (a trace computed from a formula
// rather than a data set) and hide flags on axes and legends.
func newSchema3() Schema {
	prev := newSchema2()
	s := newVersion(3, prev)

	s.registry = map[string]*ElementDescriptor{
		tagFunction: {
			Tag:        tagFunction,
			AllowsText: true, // the formula itself
			Attributes: join(styleAll, []string{attrX0, attrX1, attrDX, attrTitle, attrSymbol, attrSymbolSize}),
			Required:   []string{attrX0, attrX1},
			Defaults: map[string]string{
				attrDX: "1", attrTitle: "", attrSymbol: "none", attrSymbolSize: "0.1in",
			},
			Inherited: styleAll,
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagFunction)
		}),
		tagAxis: prev.Descriptor(tagAxis).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrHide)
			d.Defaults[attrHide] = "false"
		}),
		tagLegend: prev.Descriptor(tagLegend).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrHide)
			d.Defaults[attrHide] = "false"
		}),
	}

	s.checks = map[string]attrCheck{
		tagFunction + "/" + attrX0: floatCheck(-1e10, 1e10),
		tagFunction + "/" + attrX1: floatCheck(-1e10, 1e10),
		tagFunction + "/" + attrDX: floatCheck(-1e10, 1e10),
	}

	return s
}
