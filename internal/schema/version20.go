package schema

// Version 20 added the pie chart element. displace lists the slice indices
// drawn displaced from the hub; start is the angle of the first slice.
func newSchema20() Schema {
	prev := newSchema19()
	s := newVersion(20, prev)

	s.registry = map[string]*ElementDescriptor{
		tagPie: {
			Tag:        tagPie,
			Attributes: join(styleStroke, []string{attrFillColor, attrSrc, attrInnerRadius, attrDisplace, attrStart, attrTitle}),
			Required:   []string{attrSrc},
			Defaults: map[string]string{
				attrInnerRadius: "0", attrStart: "0", attrTitle: "",
			},
			Inherited: join(styleStroke, []string{attrFillColor}),
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagPie)
		}),
	}

	s.checks = map[string]attrCheck{
		tagPie + "/" + attrInnerRadius: intCheck(0, 99),
		tagPie + "/" + attrDisplace: intListCheck(IntListConstraints{
			MinCount: 1, MaxCount: 20, Min: 0, Max: 99, NoDuplicates: true,
		}),
		// A pie's start is an angle, unlike the axis range starts the
		// wildcard covers.
		tagPie + "/" + attrStart: floatCheck(-360, 360),
	}

	return s
}
