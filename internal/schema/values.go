package schema

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value-kind predicates. Documents persist attribute values in these exact
// textual forms, so the contracts here must not drift across releases: a
// choice list may grow, but an accepted token never changes meaning.

// IsValidColor reports whether s is a well-formed color value. The base
// form is six hex digits RRGGBB (opaque). When allowAlpha is set, the
// eight-digit AARRGGBB form and the literal token "none" (fully
// transparent) are also accepted.
func IsValidColor(s string, allowAlpha bool) bool {
	if allowAlpha && s == "none" {
		return true
	}
	switch len(s) {
	case 6:
		return isHex(s)
	case 8:
		return allowAlpha && isHex(s)
	}
	return false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}

// Measure units. "u" means axis-native user units; "%" is relative to the
// parent viewport dimension.
const (
	UnitIn      = "in"
	UnitCm      = "cm"
	UnitMm      = "mm"
	UnitPt      = "pt"
	UnitPercent = "%"
	UnitUser    = "u"
)

// Measure is a parsed <float><unit> token.
type Measure struct {
	Value float64
	Unit  string
}

// ParseMeasure parses a measure token: a floating point number immediately
// followed by a unit, with no intervening whitespace.
func ParseMeasure(s string) (Measure, bool) {
	var unit string
	switch {
	case strings.HasSuffix(s, UnitIn):
		unit = UnitIn
	case strings.HasSuffix(s, UnitCm):
		unit = UnitCm
	case strings.HasSuffix(s, UnitMm):
		unit = UnitMm
	case strings.HasSuffix(s, UnitPt):
		unit = UnitPt
	case strings.HasSuffix(s, UnitPercent):
		unit = UnitPercent
	case strings.HasSuffix(s, UnitUser):
		unit = UnitUser
	default:
		return Measure{}, false
	}
	num := s[:len(s)-len(unit)]
	if num == "" || strings.TrimSpace(num) != num {
		return Measure{}, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Measure{}, false
	}
	return Measure{Value: v, Unit: unit}, true
}

// MeasureConstraints are the per-attribute flags controlling which measure
// forms an attribute accepts.
type MeasureConstraints struct {
	AllowNegative bool
	AllowPercent  bool
	AllowUser     bool
}

// IsValidMeasure reports whether s is a measure token satisfying the
// constraints.
func IsValidMeasure(s string, c MeasureConstraints) bool {
	m, ok := ParseMeasure(s)
	if !ok {
		return false
	}
	if m.Value < 0 && !c.AllowNegative {
		return false
	}
	if m.Unit == UnitPercent && !c.AllowPercent {
		return false
	}
	if m.Unit == UnitUser && !c.AllowUser {
		return false
	}
	return true
}

// IsValidMeasuredPoint reports whether s is exactly two whitespace-separated
// measure tokens, each satisfying the constraints.
func IsValidMeasuredPoint(s string, c MeasureConstraints) bool {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return false
	}
	return IsValidMeasure(fields[0], c) && IsValidMeasure(fields[1], c)
}

// toMilliInches converts a physical measure to milli-inches. Relative units
// (% and u) have no fixed physical size and cannot be converted.
func toMilliInches(m Measure) (float64, bool) {
	switch m.Unit {
	case UnitIn:
		return m.Value * 1000, true
	case UnitCm:
		return m.Value / 2.54 * 1000, true
	case UnitMm:
		return m.Value / 25.4 * 1000, true
	case UnitPt:
		return m.Value / 72 * 1000, true
	}
	return 0, false
}

// IsValidEnum reports exact membership of s in the choice list.
func IsValidEnum(s string, choices []string) bool {
	return contains(choices, s)
}

// IsValidBool accepts exactly the literals "true" and "false".
func IsValidBool(s string) bool {
	return s == "true" || s == "false"
}

// IsValidFloat reports whether s parses as a finite float in [min, max].
func IsValidFloat(s string, min, max float64) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= min && v <= max
}

// IsValidInt reports whether s parses as an integer in [min, max].
func IsValidInt(s string, min, max int) bool {
	v, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return v >= min && v <= max
}

// IntListConstraints bound a whitespace-separated integer list attribute.
type IntListConstraints struct {
	MinCount     int
	MaxCount     int
	Min          int
	Max          int
	NoDuplicates bool
	// Synonyms are named stand-ins accepted in place of a literal list,
	// e.g. "dashed" for a specific dash-gap sequence.
	Synonyms map[string][]int
}

// IsValidIntList reports whether s is a valid integer list under the
// constraints, or one of the named synonyms.
func IsValidIntList(s string, c IntListConstraints) bool {
	if _, ok := c.Synonyms[s]; ok {
		return true
	}
	fields := strings.Fields(s)
	if len(fields) < c.MinCount || len(fields) > c.MaxCount {
		return false
	}
	seen := make(map[int]bool, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < c.Min || v > c.Max {
			return false
		}
		if c.NoDuplicates {
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}

// FloatListConstraints bound a whitespace-separated float list attribute.
type FloatListConstraints struct {
	MinCount int
	MaxCount int
	Min      float64
	Max      float64
}

// IsValidFloatList reports whether s is a valid float list under the
// constraints.
func IsValidFloatList(s string, c FloatListConstraints) bool {
	fields := strings.Fields(s)
	if len(fields) < c.MinCount || len(fields) > c.MaxCount {
		return false
	}
	for _, f := range fields {
		if !IsValidFloat(f, c.Min, c.Max) {
			return false
		}
	}
	return true
}

// IsValidToken reports whether s is a word token: a letter or underscore
// followed by letters, digits, and underscores.
func IsValidToken(s string) bool {
	return tokenRegex.MatchString(s)
}

var tokenRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var colorMapDefRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\[([^\[\]]*)\]$`)

// Custom color map definitions take the form
//
//	name[k1 k2 ... kN]
//
// where name is a word token that does not collide with a built-in map
// name and each ki is an eight-hex-digit NNRRGGBB key frame. Frames must be
// strictly ascending by index NN; the first frame's index must be 0 and the
// last must be 255; between 2 and 10 frames total.
const (
	colorMapMinFrames = 2
	colorMapMaxFrames = 10
)

// IsValidColorMapDef validates a custom color map definition against the
// given built-in map names.
func IsValidColorMapDef(s string, builtins []string) bool {
	m := colorMapDefRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	name, body := m[1], m[2]
	if contains(builtins, name) {
		return false
	}
	frames := strings.Fields(body)
	if len(frames) < colorMapMinFrames || len(frames) > colorMapMaxFrames {
		return false
	}
	prev := -1
	for i, f := range frames {
		if len(f) != 8 || !isHex(f) {
			return false
		}
		idx, err := strconv.ParseInt(f[:2], 16, 32)
		if err != nil {
			return false
		}
		if int(idx) <= prev {
			return false
		}
		if i == 0 && idx != 0 {
			return false
		}
		if i == len(frames)-1 && idx != 255 {
			return false
		}
		prev = int(idx)
	}
	return true
}
