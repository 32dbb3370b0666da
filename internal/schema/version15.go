package schema

// Version 15 made the color axis's lookup table configurable: a choice of
// built-in color maps, a gamma correction, and a dedicated color for NaN
// samples. The NaN color can never be transparent or carry alpha; a NaN
// must stay visibly distinct from "no data drawn here".
func newSchema15() Schema {
	prev := newSchema14()
	s := newVersion(15, prev)

	s.registry = map[string]*ElementDescriptor{
		tagZAxis: prev.Descriptor(tagZAxis).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrCMap, attrCMapNaN, attrGamma)
			d.Defaults[attrCMap] = "grayscale"
			d.Defaults[attrCMapNaN] = "808080"
			d.Defaults[attrGamma] = "1"
		}),
	}

	s.checks = map[string]attrCheck{
		tagZAxis + "/" + attrCMap:    enumCheck(builtinColorMaps),
		tagZAxis + "/" + attrCMapNaN: opaqueColorCheck(),
		tagZAxis + "/" + attrGamma:   floatCheck(0.1, 10),
	}

	return s
}

// builtinColorMaps are the built-in color map names. Custom definitions
// (version 22+) must not collide with them.
var builtinColorMaps = []string{"grayscale", "gray_inv", "hot", "cool", "jet", "tropic"}
