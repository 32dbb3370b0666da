package schema

// Version 18 added the textbox element: multi-line text in a clipped,
// optionally filled box, usable both at figure level and inside a graph.
func newSchema18() Schema {
	prev := newSchema17()
	s := newVersion(18, prev)

	s.registry = map[string]*ElementDescriptor{
		tagTextbox: {
			Tag:        tagTextbox,
			AllowsText: true,
			Attributes: join(styleText, []string{attrStrokeColor, attrLoc, attrWidth, attrHeight,
				attrClip, attrBkg, attrHAlign, attrVAlign, attrLineHt}),
			Defaults: map[string]string{
				attrLoc: "0% 0%", attrWidth: "2in", attrHeight: "1in",
				attrClip: "true", attrBkg: "none", attrHAlign: "left",
				attrVAlign: "top", attrLineHt: "1.2",
			},
			Inherited: join(styleText, []string{attrStrokeColor}),
		},
		tagFyp: prev.Descriptor(tagFyp).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagTextbox)
		}),
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagTextbox)
		}),
	}

	s.checks = map[string]attrCheck{
		tagTextbox + "/" + attrClip:   boolCheck(),
		tagTextbox + "/" + attrHAlign: enumCheck(hAlignChoices),
		tagTextbox + "/" + attrVAlign: enumCheck(vAlignChoices),
		tagTextbox + "/" + attrLineHt: floatCheck(0.8, 3),
	}

	return s
}
