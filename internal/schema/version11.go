package schema

import "github.com/fyplab/fypml/internal/document"

// Version 11 let a multitrace display show the individual trials without
// the average polyline, via the new avg flag. Every earlier multitrace
// always drew the average, so the flag's default of "false" cannot stand
// in for the old behavior: migration sets avg="true" explicitly on every
// multitrace.
func newSchema11() Schema {
	prev := newSchema10()
	s := newVersion(11, prev)

	s.registry = map[string]*ElementDescriptor{
		tagTrace: prev.Descriptor(tagTrace).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrAvg)
			d.Defaults[attrAvg] = "false"
		}),
	}

	s.checks = map[string]attrCheck{
		tagTrace + "/" + attrAvg: boolCheck(),
	}

	s.rewrite = rewriteV11
	return s
}

func rewriteV11(_ Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() == tagTrace && n.AttrOrDefault(attrMode) == "multitrace" {
		d.setPost(attrAvg, "true")
	}
	return d, nil
}
