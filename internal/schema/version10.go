package schema

// Version 10 added the multitrace display mode (a collection of repeated
// trials plotted as one element), per-trace offsets, and the raster
// element for spike-train style data.
func newSchema10() Schema {
	prev := newSchema9()
	s := newVersion(10, prev)

	s.registry = map[string]*ElementDescriptor{
		tagTrace: prev.Descriptor(tagTrace).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrXOff, attrYOff)
			d.Defaults[attrXOff] = "0"
			d.Defaults[attrYOff] = "0"
		}),
		tagRaster: {
			Tag:        tagRaster,
			Attributes: join(styleStroke, []string{attrFillColor, attrSrc, attrMode, attrBaseline, attrNBins, attrFilled}),
			Required:   []string{attrSrc},
			Defaults: map[string]string{
				attrMode: "trains", attrBaseline: "0", attrNBins: "10", attrFilled: "false",
			},
			Inherited: join(styleStroke, []string{attrFillColor}),
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(d.Children, tagRaster)
		}),
	}

	s.checks = map[string]attrCheck{
		tagTrace + "/" + attrMode: enumCheck(append(append([]string{}, traceModeV0...), "multitrace")),
		tagTrace + "/" + attrXOff: floatCheck(-1e10, 1e10),
		tagTrace + "/" + attrYOff: floatCheck(-1e10, 1e10),

		tagRaster + "/" + attrMode:   enumCheck([]string{"points", "trains", "histogram"}),
		tagRaster + "/" + attrNBins:  intCheck(1, 100),
		tagRaster + "/" + attrFilled: boolCheck(),
	}

	return s
}
