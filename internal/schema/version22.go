package schema

import "github.com/fyplab/fypml/internal/document"

// Version 22 allowed user-defined color maps on the color axis. The cmap
// attribute now accepts, besides the built-in names, a definition of the
// form name[k1 ... kN] with eight-hex-digit NNRRGGBB key frames at
// strictly ascending indices, anchored at 0 and 255.
func newSchema22() Schema {
	prev := newSchema21()
	s := newVersion(22, prev)

	s.checks = map[string]attrCheck{
		tagZAxis + "/" + attrCMap: func(_ Schema, _ *document.Node, v string) bool {
			return IsValidEnum(v, builtinColorMaps) || IsValidColorMapDef(v, builtinColorMaps)
		},
	}

	return s
}
