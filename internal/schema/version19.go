package schema

// Version 19 added the image element. The image payload is carried as
// base64 text content; crop is "x y w h" in source pixels.
func newSchema19() Schema {
	prev := newSchema18()
	s := newVersion(19, prev)

	s.registry = map[string]*ElementDescriptor{
		tagImage: {
			Tag:        tagImage,
			AllowsText: true,
			Attributes: []string{attrLoc, attrWidth, attrHeight, attrRotate, attrCrop},
			Defaults: map[string]string{
				attrLoc: "0% 0%", attrWidth: "1in", attrHeight: "1in", attrRotate: "0",
			},
		},
		tagFyp: prev.Descriptor(tagFyp).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagImage)
		}),
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagImage)
		}),
	}

	s.checks = map[string]attrCheck{
		tagImage + "/" + attrCrop: intListCheck(IntListConstraints{
			MinCount: 4, MaxCount: 4, Min: 0, Max: 99999,
		}),
	}

	return s
}
