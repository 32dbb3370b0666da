package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/pkg/fypml"
)

// TestMigrate_LineCapsBecomeShapes covers the version 4 rewrite: an explicit
// endpoint cap turns into a shape child pinned to the endpoint, and the cap
// attributes vanish from the line.
func TestMigrate_LineCapsBecomeShapes(t *testing.T) {
	s3 := mustSchema(t, 3)
	root := mustNode(t, s3, tagFyp)
	ln := mustNode(t, s3, tagLine)
	mustSetAttr(t, ln, attrP0, "1in 1in")
	mustSetAttr(t, ln, attrP1, "2in 1in")
	mustSetAttr(t, ln, attrP0Cap, "arrow")
	root.AppendChild(ln)

	doc, err := mustSchema(t, 4).MigrateFrom(document.NewDocument(root, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Version())
	assert.Equal(t, 3, doc.OriginalVersion())

	ln = doc.Root().Child(0)
	require.Equal(t, 1, ln.ChildCount())
	sh := ln.Child(0)
	require.Equal(t, tagShape, sh.Tag())

	typ, _ := sh.Attr(attrType)
	assert.Equal(t, "arrow", typ)
	loc, _ := sh.Attr(attrLoc)
	assert.Equal(t, "0% 100%", loc)
	lt, _ := sh.Attr(attrLineType)
	assert.Equal(t, "solid", lt)

	// The cap size was never explicitly set, so the shape relies on its own
	// size default.
	_, ok := sh.Attr(attrSize)
	assert.False(t, ok)

	// The legacy attributes are gone, not merely hidden.
	_, ok = ln.Attr(attrP0Cap)
	assert.False(t, ok)
	assert.NotContains(t, ln.ExplicitAttrs(), attrP0Cap)
}

// TestMigrate_DashedLineTypeBecomesStrokePat covers the version 6 rewrite:
// the legacy fixed-size dash patterns are rescaled by the element's
// effective stroke width.
func TestMigrate_DashedLineTypeBecomesStrokePat(t *testing.T) {
	s5 := mustSchema(t, 5)
	root := mustNode(t, s5, tagFyp)

	thick := mustNode(t, s5, tagLine)
	mustSetAttr(t, thick, attrP0, "1in 1in")
	mustSetAttr(t, thick, attrP1, "2in 1in")
	mustSetAttr(t, thick, attrLineType, "dashed")
	mustSetAttr(t, thick, attrStrokeWidth, "0.02in")
	root.AppendChild(thick)

	// No explicit stroke width anywhere: the root default of 0.01in applies.
	thin := mustNode(t, s5, tagLine)
	mustSetAttr(t, thin, attrP0, "1in 2in")
	mustSetAttr(t, thin, attrP1, "2in 2in")
	mustSetAttr(t, thin, attrLineType, "dotted")
	root.AppendChild(thin)

	solid := mustNode(t, s5, tagLine)
	mustSetAttr(t, solid, attrP0, "1in 3in")
	mustSetAttr(t, solid, attrP1, "2in 3in")
	root.AppendChild(solid)

	doc, err := mustSchema(t, 6).MigrateFrom(document.NewDocument(root, 5, 5))
	require.NoError(t, err)

	pat, _ := doc.Root().Child(0).Attr(attrStrokePat)
	assert.Equal(t, "15 15", pat)

	pat, _ = doc.Root().Child(1).Attr(attrStrokePat)
	assert.Equal(t, "10 30", pat)

	_, ok := doc.Root().Child(2).Attr(attrStrokePat)
	assert.False(t, ok, "a line that was never dashed stays solid")
}

// An explicit solid on a child of a dashed line is an override, not a
// redundancy: it has to survive the strokePat conversion or the child
// would start inheriting the parent's dash pattern.
func TestMigrate_ExplicitSolidSurvivesStrokePatConversion(t *testing.T) {
	s5 := mustSchema(t, 5)
	root := mustNode(t, s5, tagFyp)

	line := mustNode(t, s5, tagLine)
	mustSetAttr(t, line, attrP0, "1in 1in")
	mustSetAttr(t, line, attrP1, "2in 1in")
	mustSetAttr(t, line, attrLineType, "dashed")
	root.AppendChild(line)

	arrow := mustNode(t, s5, tagShape)
	mustSetAttr(t, arrow, attrType, "arrow")
	mustSetAttr(t, arrow, attrLoc, "0% 100%")
	mustSetAttr(t, arrow, attrLineType, "solid")
	line.AppendChild(arrow)

	doc, err := mustSchema(t, 6).MigrateFrom(document.NewDocument(root, 5, 5))
	require.NoError(t, err)

	migrated := doc.Root().Child(0)
	pat, _ := migrated.Attr(attrStrokePat)
	assert.Equal(t, "30 30", pat)

	pat, ok := migrated.Child(0).Attr(attrStrokePat)
	require.True(t, ok, "the explicit solid must stay explicit")
	assert.Equal(t, "solid", pat)
	assert.Equal(t, "solid", migrated.Child(0).EffectiveAttr(attrStrokePat))
}

// TestMigrate_Log2Heuristic covers the version 8 rewrite: a log axis ticked
// at a power of two was a base-2 axis in disguise.
func TestMigrate_Log2Heuristic(t *testing.T) {
	tests := []struct {
		name     string
		log      string
		intv     string
		wantLog2 bool
	}{
		{"power of two", "true", "8", true},
		{"power of ten", "true", "1000", false},
		{"both bases", "true", "1", false},
		{"linear axis", "false", "8", false},
		{"unparsable interval", "true", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s7 := mustSchema(t, 7)
			root := mustNode(t, s7, tagFyp)
			g := mustNode(t, s7, tagGraph)
			root.AppendChild(g)
			ax := mustNode(t, s7, tagAxis)
			mustSetAttr(t, ax, attrStart, "1")
			mustSetAttr(t, ax, attrEnd, "1024")
			mustSetAttr(t, ax, attrLog, tt.log)
			g.AppendChild(ax)
			tk := mustNode(t, s7, tagTicks)
			mustSetAttr(t, tk, attrIntv, tt.intv)
			ax.AppendChild(tk)

			doc, err := mustSchema(t, 8).MigrateFrom(document.NewDocument(root, 7, 7))
			require.NoError(t, err)

			ax = doc.Root().Child(0).Child(0)
			v, ok := ax.Attr(attrLog2)
			if tt.wantLog2 {
				assert.True(t, ok)
				assert.Equal(t, "true", v)
			} else {
				assert.False(t, ok, "log2 must stay at its default")
			}
		})
	}
}

// An unparsable tick interval on a linear axis must not abort the step: the
// value is the user's problem, not the migration's.
func TestMigrate_Log2HeuristicIntervalInvalid(t *testing.T) {
	s7 := mustSchema(t, 7)
	root := mustNode(t, s7, tagFyp)
	g := mustNode(t, s7, tagGraph)
	root.AppendChild(g)
	ax := mustNode(t, s7, tagAxis)
	mustSetAttr(t, ax, attrStart, "0")
	mustSetAttr(t, ax, attrEnd, "10")
	mustSetAttr(t, ax, attrLog, "true")
	g.AppendChild(ax)

	_, err := mustSchema(t, 8).MigrateFrom(document.NewDocument(root, 7, 7))
	assert.NoError(t, err, "an axis without ticks skips the heuristic")
}

// TestMigrate_GraphGainsColorAxis covers the version 9 rewrite: every graph
// gets a zaxis inserted as its third child, spanning the fixed 0..100 range.
func TestMigrate_GraphGainsColorAxis(t *testing.T) {
	s8 := mustSchema(t, 8)
	root := mustNode(t, s8, tagFyp)
	g := mustNode(t, s8, tagGraph)
	root.AppendChild(g)
	for _, rng := range [][2]string{{"0", "10"}, {"0", "5"}} {
		ax := mustNode(t, s8, tagAxis)
		mustSetAttr(t, ax, attrStart, rng[0])
		mustSetAttr(t, ax, attrEnd, rng[1])
		g.AppendChild(ax)
	}
	lg := mustNode(t, s8, tagLegend)
	g.AppendChild(lg)

	doc, err := mustSchema(t, 9).MigrateFrom(document.NewDocument(root, 8, 8))
	require.NoError(t, err)

	g = doc.Root().Child(0)
	require.Equal(t, 4, g.ChildCount())
	z := g.Child(2)
	require.Equal(t, tagZAxis, z.Tag())
	start, _ := z.Attr(attrStart)
	end, _ := z.Attr(attrEnd)
	assert.Equal(t, "0", start)
	assert.Equal(t, "100", end)
	assert.Equal(t, tagLegend, g.Child(3).Tag())
}

// TestMigrate_MultitraceGainsAveraging covers the version 11 rewrite: every
// multitrace drew the trial average before the avg flag existed, so the flag
// must be set explicitly to preserve the rendering.
func TestMigrate_MultitraceGainsAveraging(t *testing.T) {
	s10 := mustSchema(t, 10)
	root := mustNode(t, s10, tagFyp)
	g := mustNode(t, s10, tagGraph)
	root.AppendChild(g)

	multi := mustNode(t, s10, tagTrace)
	mustSetAttr(t, multi, attrSrc, "trials")
	mustSetAttr(t, multi, attrMode, "multitrace")
	multi.AppendChild(mustNode(t, s10, tagEBar))
	g.AppendChild(multi)

	poly := mustNode(t, s10, tagTrace)
	mustSetAttr(t, poly, attrSrc, "data")
	poly.AppendChild(mustNode(t, s10, tagEBar))
	g.AppendChild(poly)

	doc, err := mustSchema(t, 11).MigrateFrom(document.NewDocument(root, 10, 10))
	require.NoError(t, err)

	g = doc.Root().Child(0)
	avg, ok := g.Child(0).Attr(attrAvg)
	assert.True(t, ok)
	assert.Equal(t, "true", avg)

	_, ok = g.Child(1).Attr(attrAvg)
	assert.False(t, ok, "a polyline trace keeps the default")
}

// TestMigrate_SymbolPromotion covers the version 13 rewrite: the symbol
// attribute pair becomes a child element, carrying over only explicit values.
func TestMigrate_SymbolPromotion(t *testing.T) {
	s12 := mustSchema(t, 12)
	root := mustNode(t, s12, tagFyp)
	g := mustNode(t, s12, tagGraph)
	root.AppendChild(g)

	tr := mustNode(t, s12, tagTrace)
	mustSetAttr(t, tr, attrSrc, "data")
	mustSetAttr(t, tr, attrSymbol, "circle")
	tr.AppendChild(mustNode(t, s12, tagEBar))
	g.AppendChild(tr)

	doc, err := mustSchema(t, 13).MigrateFrom(document.NewDocument(root, 12, 12))
	require.NoError(t, err)

	tr = doc.Root().Child(0).Child(0)
	require.Equal(t, 2, tr.ChildCount())
	sym := tr.Child(0)
	require.Equal(t, tagSymbol, sym.Tag())
	assert.Equal(t, tagEBar, tr.Child(1).Tag())

	typ, _ := sym.Attr(attrType)
	assert.Equal(t, "circle", typ)
	_, ok := sym.Attr(attrSize)
	assert.False(t, ok, "size was never explicit on the trace")

	assert.NotContains(t, tr.ExplicitAttrs(), attrSymbol)
}

// TestMigrate_HeatmapBecomesContour covers the version 14 retag: the element
// keeps its identity and data source, and records the legacy display mode.
func TestMigrate_HeatmapBecomesContour(t *testing.T) {
	s13 := mustSchema(t, 13)
	root := mustNode(t, s13, tagFyp)
	g := mustNode(t, s13, tagGraph)
	root.AppendChild(g)
	hm := mustNode(t, s13, tagHeatmap)
	mustSetAttr(t, hm, attrSrc, "matrix")
	g.AppendChild(hm)

	doc, err := mustSchema(t, 14).MigrateFrom(document.NewDocument(root, 13, 13))
	require.NoError(t, err)

	c := doc.Root().Child(0).Child(0)
	assert.Equal(t, tagContour, c.Tag())
	mode, _ := c.Attr(attrMode)
	assert.Equal(t, "heatMap", mode)
	src, _ := c.Attr(attrSrc)
	assert.Equal(t, "matrix", src)
}

// TestMigrate_UnfilledGetsTransparentFill covers the version 16 rewrite. A
// histogram element that was not filled gets an explicit fillColor="none";
// the decision also reaches the trace's error bar child, while the symbol
// child keeps the fill it was drawn with.
func TestMigrate_UnfilledGetsTransparentFill(t *testing.T) {
	s15 := mustSchema(t, 15)
	root := mustNode(t, s15, tagFyp)
	g := mustNode(t, s15, tagGraph)
	root.AppendChild(g)

	unfilled := mustNode(t, s15, tagTrace)
	mustSetAttr(t, unfilled, attrSrc, "a")
	mustSetAttr(t, unfilled, attrMode, "histogram")
	unfilled.AppendChild(mustNode(t, s15, tagSymbol))
	unfilled.AppendChild(mustNode(t, s15, tagEBar))
	g.AppendChild(unfilled)

	filled := mustNode(t, s15, tagTrace)
	mustSetAttr(t, filled, attrSrc, "b")
	mustSetAttr(t, filled, attrMode, "histogram")
	mustSetAttr(t, filled, attrFilled, "true")
	filled.AppendChild(mustNode(t, s15, tagSymbol))
	filled.AppendChild(mustNode(t, s15, tagEBar))
	g.AppendChild(filled)

	rast := mustNode(t, s15, tagRaster)
	mustSetAttr(t, rast, attrSrc, "spikes")
	mustSetAttr(t, rast, attrMode, "histogram")
	g.AppendChild(rast)

	doc, err := mustSchema(t, 16).MigrateFrom(document.NewDocument(root, 15, 15))
	require.NoError(t, err)
	g = doc.Root().Child(0)

	fc, _ := g.Child(0).Attr(attrFillColor)
	assert.Equal(t, "none", fc)
	fc, _ = g.Child(0).Child(1).Attr(attrFillColor)
	assert.Equal(t, "none", fc, "the unfilled trace's error bar follows suit")
	fc, _ = g.Child(0).Child(0).Attr(attrFillColor)
	assert.Equal(t, "FFFFFF", fc, "the symbol keeps the fill it was inheriting")

	_, ok := g.Child(1).Attr(attrFillColor)
	assert.False(t, ok, "a filled trace keeps inheriting its fill")
	_, ok = g.Child(1).Child(1).Attr(attrFillColor)
	assert.False(t, ok)
	_, ok = g.Child(1).Child(0).Attr(attrFillColor)
	assert.False(t, ok)

	fc, _ = g.Child(2).Attr(attrFillColor)
	assert.Equal(t, "none", fc)

	assert.NotContains(t, g.Child(0).ExplicitAttrs(), attrFilled)
	assert.NotContains(t, g.Child(1).ExplicitAttrs(), attrFilled)
}

// Outside histogram and errorband modes the filled flag had no rendering
// effect, so retiring it must not touch the trace's fill at all; in
// particular a polyline trace's symbol keeps its inherited fill.
func TestMigrate_PolylineTraceKeepsInheritedFill(t *testing.T) {
	s15 := mustSchema(t, 15)
	root := mustNode(t, s15, tagFyp)
	g := mustNode(t, s15, tagGraph)
	root.AppendChild(g)

	tr := mustNode(t, s15, tagTrace)
	mustSetAttr(t, tr, attrSrc, "a")
	sym := mustNode(t, s15, tagSymbol)
	mustSetAttr(t, sym, attrType, "circle")
	tr.AppendChild(sym)
	tr.AppendChild(mustNode(t, s15, tagEBar))
	g.AppendChild(tr)

	doc, err := mustSchema(t, 16).MigrateFrom(document.NewDocument(root, 15, 15))
	require.NoError(t, err)

	tr = doc.Root().Child(0).Child(0)
	_, ok := tr.Attr(attrFillColor)
	assert.False(t, ok, "a polyline trace keeps inheriting its fill")
	_, ok = tr.Child(0).Attr(attrFillColor)
	assert.False(t, ok)
	assert.Equal(t, "FFFFFF", tr.Child(0).EffectiveAttr(attrFillColor))
	_, ok = tr.Child(1).Attr(attrFillColor)
	assert.False(t, ok)
	assert.NotContains(t, tr.ExplicitAttrs(), attrFilled)
}

// TestMigrate_VersionMismatch verifies that a step refuses any document not
// exactly one version behind, and leaves the source intact when refusing.
func TestMigrate_VersionMismatch(t *testing.T) {
	s2 := mustSchema(t, 2)
	root := mustNode(t, s2, tagFyp)
	doc := document.NewDocument(root, 2, 2)

	_, err := mustSchema(t, 4).MigrateFrom(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fypml.ErrVersionMismatch))
	assert.NotNil(t, doc.Root(), "a refused document must not be consumed")
}

func TestMigrate_EmptyDocument(t *testing.T) {
	_, err := mustSchema(t, 1).MigrateFrom(nil)
	assert.True(t, errors.Is(err, fypml.ErrNotFypML))

	// A document consumed by a prior step has no root anymore.
	doc := document.NewDocument(mustNode(t, mustSchema(t, 0), tagFyp), 0, 0)
	doc.DetachRoot()
	_, err = mustSchema(t, 1).MigrateFrom(doc)
	assert.True(t, errors.Is(err, fypml.ErrNotFypML))
}

// TestMigrate_PureRebindStep verifies a version with no rewrite hook: the
// tree passes through structurally unchanged, only bound to the new version.
func TestMigrate_PureRebindStep(t *testing.T) {
	s0 := mustSchema(t, 0)
	root := mustNode(t, s0, tagFyp)
	lb := mustNode(t, s0, tagLabel)
	mustSetAttr(t, lb, attrTitle, "Figure 1")
	root.AppendChild(lb)

	doc, err := mustSchema(t, 1).MigrateFrom(document.NewDocument(root, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version())
	assert.Equal(t, 1, doc.Root().Binding().Version())
	title, _ := doc.Root().Child(0).Attr(attrTitle)
	assert.Equal(t, "Figure 1", title)
}
