package schema

import "github.com/fyplab/fypml/internal/document"

// Version 14 superseded the fixed-purpose heatmap element with the general
// contour element, which can render level lists, filled level bands, or a
// heat map image. Migration retags each heatmap in place as a contour and
// pins mode="heatMap", the one behavior the deprecated element had; src
// and smooth carry over unchanged.
func newSchema14() Schema {
	prev := newSchema13()
	s := newVersion(14, prev)

	s.registry = map[string]*ElementDescriptor{
		tagContour: {
			Tag:        tagContour,
			Attributes: []string{attrSrc, attrSmooth, attrMode, attrLevels, attrStrokeColor, attrStrokeWidth},
			Required:   []string{attrSrc},
			Defaults: map[string]string{
				attrSmooth: "false", attrMode: "levelList",
			},
			Inherited: []string{attrStrokeColor, attrStrokeWidth},
		},
		tagGraph: prev.Descriptor(tagGraph).derive(func(d *ElementDescriptor) {
			d.Children = append(without(d.Children, tagHeatmap), tagContour)
		}),
	}
	s.removed = map[string]bool{tagHeatmap: true}

	s.checks = map[string]attrCheck{
		tagContour + "/" + attrSmooth: boolCheck(),
		tagContour + "/" + attrMode:   enumCheck(contourModeChoices),
		tagContour + "/" + attrLevels: floatListCheck(FloatListConstraints{
			MinCount: 1, MaxCount: 20, Min: -1e10, Max: 1e10,
		}),
	}

	s.rewrite = rewriteV14
	return s
}

var contourModeChoices = []string{"levelList", "filledLevels", "heatMap"}

func rewriteV14(s Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() != tagHeatmap {
		return d, nil
	}
	// Reuse the node identity and position; only the tag and the display
	// mode change.
	if err := n.Retag(tagContour, s); err != nil {
		return d, err
	}
	d.setPost(attrMode, "heatMap")
	return d, nil
}
