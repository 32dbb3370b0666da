package schema

// Version 17 added the scatter element: an X-Y scatter whose marks can
// encode a third data dimension through their size, their color (via the
// graph's color axis), or both.
func newSchema17() Schema {
	prev := newSchema16()
	s := newVersion(17, prev)

	s.registry = map[string]*ElementDescriptor{
		tagScatter: {
			Tag:        tagScatter,
			Attributes: join(styleStroke, []string{attrFillColor, attrSrc, attrMode, attrSize, attrTitle}),
			Required:   []string{attrSrc},
			Defaults: map[string]string{
				attrMode: "scatter", attrSize: "0.1in", attrTitle: "",
			},
			Inherited: join(styleStroke, []string{attrFillColor}),
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagScatter)
		}),
	}

	s.checks = map[string]attrCheck{
		tagScatter + "/" + attrMode: enumCheck([]string{"scatter", "sizeBubble", "colorBubble", "colorSizeBubble"}),
	}

	return s
}
