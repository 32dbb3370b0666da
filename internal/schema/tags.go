package schema

// Element tags. Tags never change meaning across versions; elements are
// introduced, removed, or replaced wholesale (see heatmap/contour).
const (
	tagFyp      = "fyp"
	tagLabel    = "label"
	tagLine     = "line"
	tagShape    = "shape"
	tagGraph    = "graph"
	tagAxis     = "axis"
	tagTicks    = "ticks"
	tagGridline = "gridline"
	tagLegend   = "legend"
	tagCalib    = "calib"
	tagTrace    = "trace"
	tagEBar     = "ebar"
	tagSymbol   = "symbol" // element form, version 13+
	tagSet      = "set"
	tagFunction = "function"
	tagHeatmap  = "heatmap"
	tagContour  = "contour"
	tagZAxis    = "zaxis"
	tagRaster   = "raster"
	tagScatter  = "scatter"
	tagTextbox  = "textbox"
	tagImage    = "image"
	tagPie      = "pie"
)

// Attribute names shared across elements.
const (
	attrFont        = "font"
	attrFontSize    = "fontSize"
	attrFillColor   = "fillColor"
	attrStrokeColor = "strokeColor"
	attrStrokeWidth = "strokeWidth"
	attrLineType    = "lineType"   // replaced by strokePat at version 6
	attrStrokePat   = "strokePat"  // version 6+
	attrStrokeCap   = "strokeCap"  // version 7+
	attrStrokeJoin  = "strokeJoin" // version 7+
	attrTitle       = "title"
	attrLoc         = "loc"
	attrWidth       = "width"
	attrHeight      = "height"
	attrRotate      = "rotate"
	attrSize        = "size"
	attrHide        = "hide"
	attrMode        = "mode"
	attrSrc         = "src"
	attrGap         = "gap"
	attrClip        = "clip"
	attrCap         = "cap"
	attrCapSize     = "capSize"
	attrStart       = "start"
	attrEnd         = "end"
	attrNote        = "note" // version 23+
)

// Element-specific attribute names.
const (
	attrHAlign      = "halign"
	attrVAlign      = "valign"
	attrP0          = "p0"
	attrP1          = "p1"
	attrP0Cap       = "p0Cap" // line endpoint decorations, removed at version 4
	attrP0CapSize   = "p0CapSize"
	attrP1Cap       = "p1Cap"
	attrP1CapSize   = "p1CapSize"
	attrMidCap      = "midCap"
	attrMidCapSize  = "midCapSize"
	attrType        = "type"
	attrUnits       = "units"
	attrLog         = "log"
	attrLog2        = "log2" // version 8+
	attrLabelOffset = "labelOffset"
	attrSpacer      = "spacer"
	attrIntv        = "intv"
	attrPerLogIntv  = "perLogIntv"
	attrDir         = "dir"
	attrFmt         = "fmt"
	attrLen         = "len"
	attrAuto        = "auto"
	attrHoriz       = "horiz"
	attrMid         = "mid"
	attrBarWidth    = "barWidth"
	attrBaseline    = "baseline"
	attrFilled      = "filled" // removed at version 16
	attrXOff        = "xoff"   // version 10+
	attrYOff        = "yoff"   // version 10+
	attrSkip        = "skip"
	attrAvg         = "avg"    // version 11+
	attrSymbol      = "symbol" // attribute form, removed at version 13
	attrSymbolSize  = "symbolSize"
	attrID          = "id"
	attrDX          = "dx"
	attrX0          = "x0"
	attrX1          = "x1"
	attrSmooth      = "smooth"
	attrLevels      = "levels"
	attrCMap        = "cmap"    // version 15+
	attrCMapNaN     = "cmapnan" // version 15+, never accepts alpha or "none"
	attrGamma       = "gamma"   // version 15+
	attrEdge        = "edge"    // version 21+
	attrNBins       = "nbins"
	attrBkg         = "bkg"
	attrLineHt      = "lineHt"
	attrCrop        = "crop"
	attrInnerRadius = "innerRadius"
	attrDisplace    = "displace"
	attrBoxColor    = "boxColor" // version 23+
)
