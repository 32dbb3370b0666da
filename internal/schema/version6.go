package schema

import (
	"math"
	"strconv"
	"strings"

	"github.com/fyplab/fypml/internal/document"
)

// Version 6 replaced the fixed lineType enumeration with the strokePat
// attribute: a dash-gap integer sequence measured in dimensionless 0.1
// linewidth units, so patterns scale with the stroke they decorate. An
// absent strokePat renders solid.
func newSchema6() Schema {
	prev := newSchema5()
	s := newVersion(6, prev)

	s.registry = map[string]*ElementDescriptor{}
	for _, tag := range []string{tagFyp, tagGraph, tagLine, tagShape, tagTrace,
		tagGridline, tagEBar, tagCalib, tagFunction} {
		s.registry[tag] = prev.Descriptor(tag).derive(func(d *ElementDescriptor) {
			d.Attributes = append(without(d.Attributes, attrLineType), attrStrokePat)
			if contains(d.Inherited, attrLineType) {
				d.Inherited = append(without(d.Inherited, attrLineType), attrStrokePat)
			}
			delete(d.Defaults, attrLineType)
		})
	}

	s.checks = map[string]attrCheck{
		"*/" + attrStrokePat: intListCheck(IntListConstraints{
			MinCount: 1, MaxCount: 6, Min: 1, Max: 99,
			Synonyms: strokePatSynonyms,
		}),
	}

	s.rewrite = rewriteV6
	return s
}

// strokePatSynonyms are the named stand-ins the validator accepts in place
// of a literal dash-gap list. The dash keywords encode the legacy pattern
// rendered at the default stroke width; "solid" is the empty pattern, an
// explicit no-dash that masks any inherited pattern.
var strokePatSynonyms = map[string][]int{
	"solid":   {},
	"dashed":  {30, 30},
	"dotted":  {10, 30},
	"dashdot": {30, 30, 10, 30},
}

// legacyDashMilliIn holds the dash-gap sequences the legacy line types
// rendered at, in milli-inches.
var legacyDashMilliIn = map[string][]float64{
	"dashed":  {30, 30},
	"dotted":  {10, 30},
	"dashdot": {30, 30, 10, 30},
}

func rewriteV6(_ Schema, n *document.Node, _ pending) (directive, error) {
	var d directive
	// Only explicitly set line types need conversion: an inherited or
	// defaulted "solid" maps to an absent strokePat. Capture happens here,
	// before the rebind hides the attribute.
	lt, ok := n.Attr(attrLineType)
	if !ok {
		return d, nil
	}
	if lt == "solid" {
		// An explicit solid overrides whatever the ancestors carry, so it
		// must survive as an explicit strokePat or the node would start
		// inheriting a converted dash pattern.
		d.setPost(attrStrokePat, "solid")
		return d, nil
	}
	pat, ok := dashPatternFor(lt, n.EffectiveAttr(attrStrokeWidth))
	if !ok {
		// Unrecognized keyword: the safe rendering is solid, i.e. no
		// strokePat at all.
		return d, nil
	}
	d.setPost(attrStrokePat, pat)
	return d, nil
}

// dashPatternFor converts a legacy line type keyword into a strokePat
// value. The legacy dash and gap lengths were fixed physical sizes; the
// new representation is multiples of 0.1 linewidth, so the conversion
// divides by the element's effective stroke width. A stroke width that
// cannot be resolved to a physical size (relative units, malformed value)
// falls back to the named synonym, which encodes the same sequence at the
// default width.
func dashPatternFor(lineType, strokeWidth string) (string, bool) {
	seq, ok := legacyDashMilliIn[lineType]
	if !ok {
		return "", false
	}
	m, ok := ParseMeasure(strokeWidth)
	if !ok {
		return lineType, true
	}
	swMilliIn, ok := toMilliInches(m)
	if !ok || swMilliIn <= 0 {
		return lineType, true
	}
	unit := swMilliIn / 10
	tokens := make([]string, len(seq))
	for i, v := range seq {
		t := int(math.Round(v / unit))
		if t < 1 {
			t = 1
		}
		if t > 99 {
			t = 99
		}
		tokens[i] = strconv.Itoa(t)
	}
	return strings.Join(tokens, " "), true
}
