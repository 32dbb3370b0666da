package schema

import (
	"math"
	"strconv"

	"github.com/fyplab/fypml/internal/document"
)

// Version 8 added base-2 logarithmic axes. Documents written earlier could
// only express a log axis implicitly through its tick interval, so the
// migration re-derives the intent: a logarithmic axis whose tick interval
// is a power of two (and not also a power of ten) was being used as a
// base-2 axis and is marked log2="true". An unparsable interval leaves the
// attribute at its safe default of "false", which renders as before.
func newSchema8() Schema {
	prev := newSchema7()
	s := newVersion(8, prev)

	s.registry = map[string]*ElementDescriptor{
		tagAxis: prev.Descriptor(tagAxis).derive(func(d *ElementDescriptor) {
			d.Attributes = append(d.Attributes, attrLog2)
			d.Defaults[attrLog2] = "false"
		}),
	}

	s.checks = map[string]attrCheck{
		tagAxis + "/" + attrLog2: boolCheck(),
	}

	s.rewrite = rewriteV8
	return s
}

func rewriteV8(_ Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	if n.Tag() != tagAxis || n.AttrOrDefault(attrLog) != "true" {
		return d, nil
	}
	t := n.FirstChildWithTag(tagTicks)
	if t == nil {
		return d, nil
	}
	intv, err := strconv.ParseFloat(t.AttrOrDefault(attrIntv), 64)
	if err != nil || intv <= 1 {
		// Cannot compute the heuristic; the attribute is optional and its
		// default preserves the old rendering, so skip it rather than
		// aborting the migration.
		return d, nil
	}
	if isIntegralPower(intv, 2) && !isIntegralPower(intv, 10) {
		d.setPost(attrLog2, "true")
	}
	return d, nil
}

const powerEpsilon = 1e-9

func isIntegralPower(v, base float64) bool {
	l := math.Log(v) / math.Log(base)
	return math.Abs(l-math.Round(l)) < powerEpsilon
}
