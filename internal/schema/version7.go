package schema

import "github.com/fyplab/fypml/internal/document"

// Version 7 introduced stroke endcap and join styling. Before this version
// every stroke was rendered with a butt cap and miter join, so migration
// writes those values explicitly on the root figure rather than relying on
// the defaults: the defaults are free to track rendering conventions,
// the migrated document must not.
func newSchema7() Schema {
	prev := newSchema6()
	s := newVersion(7, prev)

	s.registry = map[string]*ElementDescriptor{}
	for _, tag := range []string{tagFyp, tagGraph, tagLine, tagShape, tagTrace,
		tagGridline, tagEBar, tagCalib, tagFunction} {
		s.registry[tag] = prev.Descriptor(tag).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrStrokeCap, attrStrokeJoin)
			d.Inherited = append(d.Inherited, attrStrokeCap, attrStrokeJoin)
			if d.Tag == tagFyp {
				d.Defaults[attrStrokeCap] = "butt"
				d.Defaults[attrStrokeJoin] = "miter"
			}
		})
	}

	s.checks = map[string]attrCheck{
		"*/" + attrStrokeCap:  enumCheck([]string{"butt", "round", "square"}),
		"*/" + attrStrokeJoin: enumCheck([]string{"miter", "round", "bevel"}),
	}

	s.rewrite = rewriteV7
	return s
}

func rewriteV7(_ Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() == tagFyp {
		d.setPost(attrStrokeCap, "butt")
		d.setPost(attrStrokeJoin, "miter")
	}
	return d, nil
}
