package schema

import "github.com/fyplab/fypml/internal/document"

// newVersion wires the shared delegation machinery for a schema version.
// Version-wide capabilities (alpha colors) carry forward from the
// predecessor unless the new version changes them.
func newVersion(version int, prev Schema) *versionBase {
	if version < 0 {
		panic("schema version cannot be negative")
	}
	if prev == nil && version != 0 {
		panic("only version 0 may lack a predecessor")
	}
	if prev != nil && prev.Version() != version-1 {
		panic("schema version must be exactly one greater than its predecessor")
	}
	s := &versionBase{version: version, prev: prev}
	if prev != nil {
		s.alphaColors = prev.allowsAlphaColors()
	}
	s.self = s
	return s
}

// Choice lists. Lists grow monotonically across versions; an accepted token
// never changes meaning.
var (
	fontChoices      = []string{"Helvetica", "Times", "Courier", "Symbol"}
	lineTypeChoices  = []string{"solid", "dashed", "dotted", "dashdot"}
	endCapChoices    = []string{"none", "arrow", "filledArrow", "bracket", "disk"}
	shapeTypeChoices = []string{"rect", "oval", "diamond", "uptriangle", "downtriangle",
		"arrow", "filledArrow", "bracket", "disk"}
	graphTypeChoices = []string{"cartesian", "semilogX", "semilogY", "loglog", "polar"}
	hAlignChoices    = []string{"left", "center", "right"}
	vAlignChoices    = []string{"top", "middle", "bottom"}
	tickDirChoices   = []string{"in", "out", "thru"}
	tickFmtChoices   = []string{"none", "int", "f1", "f2", "f3"}
	traceModeV0      = []string{"polyline", "staircase", "errorband", "histogram"}
	symbolChoices    = []string{"none", "circle", "square", "diamond", "uptriangle", "downtriangle"}
	setFmtChoices    = []string{"ptset", "series", "mset", "mseries"}
)

// Measure constraint presets.
var (
	mcPhysical = MeasureConstraints{}                                              // physical sizes: no negatives, no relative units
	mcDim      = MeasureConstraints{AllowPercent: true}                            // widths/heights relative to parent viewport
	mcLoc      = MeasureConstraints{AllowNegative: true, AllowPercent: true, AllowUser: true} // locations in any space
	mcUser     = MeasureConstraints{AllowUser: true}                               // axis-native extents
)

// Attribute check constructors shared by every version's tables.

func colorCheck() attrCheck {
	return func(outer Schema, _ *document.Node, v string) bool {
		return IsValidColor(v, outer.allowsAlphaColors())
	}
}

// opaqueColorCheck never admits alpha or "none", regardless of version
// capabilities. Used for NaN-color attributes.
func opaqueColorCheck() attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool {
		return IsValidColor(v, false)
	}
}

func enumCheck(choices []string) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidEnum(v, choices) }
}

func boolCheck() attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidBool(v) }
}

func measureCheck(c MeasureConstraints) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidMeasure(v, c) }
}

func pointCheck(c MeasureConstraints) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidMeasuredPoint(v, c) }
}

func floatCheck(min, max float64) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidFloat(v, min, max) }
}

func intCheck(min, max int) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidInt(v, min, max) }
}

func intListCheck(c IntListConstraints) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidIntList(v, c) }
}

func floatListCheck(c FloatListConstraints) attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidFloatList(v, c) }
}

func tokenCheck() attrCheck {
	return func(_ Schema, _ *document.Node, v string) bool { return IsValidToken(v) }
}

func anyCheck() attrCheck {
	return func(Schema, *document.Node, string) bool { return true }
}

// Style attribute groups. All style attributes inherit: an element that
// does not set one takes the nearest ancestor's value, bottoming out at the
// root figure's defaults.
var (
	styleAll    = []string{attrFont, attrFontSize, attrFillColor, attrStrokeColor, attrStrokeWidth, attrLineType}
	styleStroke = []string{attrStrokeColor, attrStrokeWidth, attrLineType}
	styleText   = []string{attrFont, attrFontSize}
)

func join(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// newSchema0 builds the base schema: the element set of the original,
// pre-versioning document format.
func newSchema0() Schema {
	s := newVersion(0, nil)

	s.registry = map[string]*ElementDescriptor{
		tagFyp: {
			Tag:        tagFyp,
			Children:   []string{tagLabel, tagLine, tagShape, tagGraph},
			Attributes: join(styleAll, []string{attrTitle, attrWidth, attrHeight}),
			Defaults: map[string]string{
				attrFont:        "Helvetica",
				attrFontSize:    "12",
				attrFillColor:   "FFFFFF",
				attrStrokeColor: "000000",
				attrStrokeWidth: "0.01in",
				attrLineType:    "solid",
				attrTitle:       "",
				attrWidth:       "6.5in",
				attrHeight:      "9in",
			},
			Inherited: styleAll,
		},
		tagLabel: {
			Tag:        tagLabel,
			Attributes: join(styleText, []string{attrStrokeColor, attrTitle, attrLoc, attrRotate, attrHAlign, attrVAlign}),
			Required:   []string{attrTitle},
			Defaults: map[string]string{
				attrLoc:    "0% 0%",
				attrRotate: "0",
				attrHAlign: "left",
				attrVAlign: "bottom",
			},
			Inherited: join(styleText, []string{attrStrokeColor}),
		},
		tagLine: {
			Tag:      tagLine,
			Children: []string{tagLabel},
			Attributes: join(styleAll, []string{attrP0, attrP1,
				attrP0Cap, attrP0CapSize, attrP1Cap, attrP1CapSize, attrMidCap, attrMidCapSize}),
			Required: []string{attrP0, attrP1},
			Defaults: map[string]string{
				attrP0Cap: "none", attrP1Cap: "none", attrMidCap: "none",
				attrP0CapSize: "0.2in", attrP1CapSize: "0.2in", attrMidCapSize: "0.2in",
			},
			Inherited: styleAll,
		},
		tagShape: {
			Tag:        tagShape,
			Children:   []string{tagLabel},
			Attributes: join(styleAll, []string{attrType, attrSize, attrLoc, attrRotate, attrTitle}),
			Defaults: map[string]string{
				attrType: "rect", attrSize: "0.2in", attrLoc: "50% 50%",
				attrRotate: "0", attrTitle: "",
			},
			Inherited: styleAll,
		},
		tagGraph: {
			Tag:        tagGraph,
			Children:   []string{tagAxis, tagGridline, tagLegend, tagTrace, tagSet, tagLabel, tagLine, tagShape},
			Attributes: join(styleAll, []string{attrType, attrLoc, attrWidth, attrHeight, attrTitle}),
			Defaults: map[string]string{
				attrType: "cartesian", attrLoc: "15% 15%",
				attrWidth: "70%", attrHeight: "70%", attrTitle: "",
			},
			Inherited: styleAll,
		},
		tagAxis: {
			Tag:      tagAxis,
			Children: []string{tagTicks, tagLabel},
			Attributes: join(styleText, styleStroke[:2],
				[]string{attrStart, attrEnd, attrTitle, attrUnits, attrLog, attrLabelOffset, attrSpacer}),
			Required: []string{attrStart, attrEnd},
			Defaults: map[string]string{
				attrTitle: "", attrUnits: "", attrLog: "false",
				attrLabelOffset: "0.05in", attrSpacer: "0.3in",
			},
			Inherited: join(styleText, styleStroke[:2]),
		},
		tagTicks: {
			Tag: tagTicks,
			Attributes: join(styleText, styleStroke[:2],
				[]string{attrStart, attrEnd, attrIntv, attrPerLogIntv, attrDir, attrFmt, attrLen}),
			Defaults: map[string]string{
				attrIntv: "10", attrPerLogIntv: "1", attrDir: "out",
				attrFmt: "int", attrLen: "0.1in",
			},
			Inherited: join(styleText, styleStroke[:2]),
		},
		tagGridline: {
			Tag:        tagGridline,
			Attributes: join(styleStroke, []string{attrHide}),
			Defaults:   map[string]string{attrHide: "false"},
			Inherited:  styleStroke,
		},
		tagLegend: {
			Tag:        tagLegend,
			Attributes: join(styleText, []string{attrLoc, attrSpacer, attrSize, attrMid}),
			Defaults: map[string]string{
				attrLoc: "100% 50%", attrSpacer: "0.25in", attrSize: "0.3in", attrMid: "true",
			},
			Inherited: styleText,
		},
		tagTrace: {
			Tag:      tagTrace,
			Children: []string{tagEBar},
			Attributes: join(styleAll,
				[]string{attrSrc, attrMode, attrBarWidth, attrBaseline, attrFilled, attrSkip, attrSymbol, attrSymbolSize, attrTitle}),
			Required: []string{attrSrc},
			Defaults: map[string]string{
				attrMode: "polyline", attrBarWidth: "0u", attrBaseline: "0",
				attrFilled: "false", attrSkip: "1", attrSymbol: "none",
				attrSymbolSize: "0.1in", attrTitle: "",
			},
			Inherited: styleAll,
		},
		tagEBar: {
			Tag:        tagEBar,
			Attributes: join(styleStroke, []string{attrHide, attrCap, attrCapSize}),
			Defaults: map[string]string{
				attrHide: "false", attrCap: "bracket", attrCapSize: "0.1in",
			},
			Inherited: styleStroke,
		},
		tagSet: {
			Tag:        tagSet,
			AllowsText: true,
			Attributes: []string{attrID, attrFmt, attrDX, attrX0},
			Required:   []string{attrID},
			Defaults:   map[string]string{attrFmt: "ptset", attrDX: "1", attrX0: "0"},
		},
	}

	s.checks = map[string]attrCheck{
		// Style and broadly shared attributes.
		"*/" + attrFont:        enumCheck(fontChoices),
		"*/" + attrFontSize:    intCheck(1, 99),
		"*/" + attrFillColor:   colorCheck(),
		"*/" + attrStrokeColor: colorCheck(),
		"*/" + attrStrokeWidth: measureCheck(mcPhysical),
		"*/" + attrLineType:    enumCheck(lineTypeChoices),
		"*/" + attrTitle:       anyCheck(),
		"*/" + attrLoc:         pointCheck(mcLoc),
		"*/" + attrWidth:       measureCheck(mcDim),
		"*/" + attrHeight:      measureCheck(mcDim),
		"*/" + attrRotate:      floatCheck(-360, 360),
		"*/" + attrHide:        boolCheck(),
		"*/" + attrSrc:         tokenCheck(),
		"*/" + attrStart:       floatCheck(-1e10, 1e10),
		"*/" + attrEnd:         floatCheck(-1e10, 1e10),
		"*/" + attrCap:         enumCheck(endCapChoices),
		"*/" + attrCapSize:     measureCheck(mcPhysical),
		"*/" + attrBaseline:    floatCheck(-1e10, 1e10),
		"*/" + attrSymbol:      enumCheck(symbolChoices),
		"*/" + attrSymbolSize:  measureCheck(mcPhysical),
		"*/" + attrSpacer:      measureCheck(mcPhysical),
		"*/" + attrSize:        measureCheck(mcPhysical),

		// Element-specific attributes.
		tagLabel + "/" + attrHAlign: enumCheck(hAlignChoices),
		tagLabel + "/" + attrVAlign: enumCheck(vAlignChoices),

		tagLine + "/" + attrP0:         pointCheck(mcLoc),
		tagLine + "/" + attrP1:         pointCheck(mcLoc),
		tagLine + "/" + attrP0Cap:      enumCheck(endCapChoices),
		tagLine + "/" + attrP1Cap:      enumCheck(endCapChoices),
		tagLine + "/" + attrMidCap:     enumCheck(endCapChoices),
		tagLine + "/" + attrP0CapSize:  measureCheck(mcPhysical),
		tagLine + "/" + attrP1CapSize:  measureCheck(mcPhysical),
		tagLine + "/" + attrMidCapSize: measureCheck(mcPhysical),

		tagShape + "/" + attrType: enumCheck(shapeTypeChoices),
		tagGraph + "/" + attrType: enumCheck(graphTypeChoices),

		tagAxis + "/" + attrUnits:       anyCheck(),
		tagAxis + "/" + attrLog:         boolCheck(),
		tagAxis + "/" + attrLabelOffset: measureCheck(mcPhysical),

		tagTicks + "/" + attrIntv: floatCheck(1e-10, 1e10),
		tagTicks + "/" + attrPerLogIntv: intListCheck(IntListConstraints{
			MinCount: 1, MaxCount: 9, Min: 1, Max: 9, NoDuplicates: true,
		}),
		tagTicks + "/" + attrDir: enumCheck(tickDirChoices),
		tagTicks + "/" + attrFmt: enumCheck(tickFmtChoices),
		tagTicks + "/" + attrLen: measureCheck(mcPhysical),

		tagLegend + "/" + attrMid: boolCheck(),

		tagTrace + "/" + attrMode:     enumCheck(traceModeV0),
		tagTrace + "/" + attrBarWidth: measureCheck(mcUser),
		tagTrace + "/" + attrFilled:   boolCheck(),
		tagTrace + "/" + attrSkip:     intCheck(1, 9999),

		tagSet + "/" + attrID:  tokenCheck(),
		tagSet + "/" + attrFmt: enumCheck(setFmtChoices),
		tagSet + "/" + attrDX:  floatCheck(-1e10, 1e10),
		tagSet + "/" + attrX0:  floatCheck(-1e10, 1e10),
	}

	s.rules = map[string]*childRule{
		tagGraph: {
			required: graphRequiredChildren,
			childAt:  graphChildAt,
		},
		tagAxis: {
			childAt: axisChildAt,
		},
		tagTrace: {
			required: traceRequiredChildrenV0,
			childAt:  traceChildAtV0,
		},
	}

	return s
}

// graphRequiredChildren: the first two children of a graph must be its
// primary and secondary axes, in that order.
func graphRequiredChildren(_ Schema, n *document.Node) bool {
	return n.ChildCount() >= 2 &&
		n.Child(0).Tag() == tagAxis &&
		n.Child(1).Tag() == tagAxis
}

// graphChildAt: axes occupy exactly indexes 0 and 1; everything else comes
// after.
func graphChildAt(_ Schema, _ *document.Node, childTag string, index int) bool {
	if childTag == tagAxis {
		return index < 2
	}
	return index >= 2
}

// axisChildAt: tick sets must be contiguous and appear before any other
// children.
func axisChildAt(_ Schema, n *document.Node, childTag string, index int) bool {
	if childTag == tagTicks {
		for i := 0; i < index && i < n.ChildCount(); i++ {
			if n.Child(i).Tag() != tagTicks {
				return false
			}
		}
		return true
	}
	for i := index + 1; i < n.ChildCount(); i++ {
		if n.Child(i).Tag() == tagTicks {
			return false
		}
	}
	return true
}

// traceRequiredChildrenV0: exactly one error-bar child at index 0.
func traceRequiredChildrenV0(_ Schema, n *document.Node) bool {
	return n.ChildCount() == 1 && n.Child(0).Tag() == tagEBar
}

func traceChildAtV0(_ Schema, _ *document.Node, childTag string, index int) bool {
	return childTag == tagEBar && index == 0
}
