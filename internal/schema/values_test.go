package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		value      string
		allowAlpha bool
		want       bool
	}{
		{"FF0000", false, true},
		{"ff00aa", false, true},
		{"FF000", false, false},
		{"GG0000", false, false},
		{"", false, false},
		{"80FF0000", false, false},
		{"80FF0000", true, true},
		{"none", false, false},
		{"none", true, true},
		{"None", true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidColor(tt.value, tt.allowAlpha),
			"IsValidColor(%q, %v)", tt.value, tt.allowAlpha)
	}
}

func TestParseMeasure(t *testing.T) {
	m, ok := ParseMeasure("0.25in")
	assert.True(t, ok)
	assert.Equal(t, Measure{Value: 0.25, Unit: UnitIn}, m)

	m, ok = ParseMeasure("-3mm")
	assert.True(t, ok)
	assert.Equal(t, Measure{Value: -3, Unit: UnitMm}, m)

	m, ok = ParseMeasure("50%")
	assert.True(t, ok)
	assert.Equal(t, Measure{Value: 50, Unit: UnitPercent}, m)

	for _, bad := range []string{"", "in", "1", "1 in", " 1in", "1.2.3cm", "NaNpt", "Infin"} {
		_, ok := ParseMeasure(bad)
		assert.False(t, ok, "ParseMeasure(%q) should fail", bad)
	}
}

func TestIsValidMeasure_Constraints(t *testing.T) {
	assert.True(t, IsValidMeasure("0.1in", mcPhysical))
	assert.False(t, IsValidMeasure("-0.1in", mcPhysical))
	assert.False(t, IsValidMeasure("50%", mcPhysical))
	assert.False(t, IsValidMeasure("2u", mcPhysical))

	assert.True(t, IsValidMeasure("50%", mcDim))
	assert.False(t, IsValidMeasure("-50%", mcDim))

	assert.True(t, IsValidMeasure("-1.5u", mcLoc))
	assert.True(t, IsValidMeasure("-2cm", mcLoc))
}

func TestIsValidMeasuredPoint(t *testing.T) {
	assert.True(t, IsValidMeasuredPoint("50% 100%", mcLoc))
	assert.True(t, IsValidMeasuredPoint("1in\t-2u", mcLoc))
	assert.False(t, IsValidMeasuredPoint("50%", mcLoc))
	assert.False(t, IsValidMeasuredPoint("50% 100% 1in", mcLoc))
	assert.False(t, IsValidMeasuredPoint("50% bogus", mcLoc))
}

func TestIsValidBool(t *testing.T) {
	assert.True(t, IsValidBool("true"))
	assert.True(t, IsValidBool("false"))
	assert.False(t, IsValidBool("True"))
	assert.False(t, IsValidBool("1"))
	assert.False(t, IsValidBool(""))
}

func TestIsValidIntList(t *testing.T) {
	c := IntListConstraints{MinCount: 1, MaxCount: 6, Min: 1, Max: 99, Synonyms: strokePatSynonyms}

	assert.True(t, IsValidIntList("30 30", c))
	assert.True(t, IsValidIntList("1 99 50 2 3 4", c))
	assert.True(t, IsValidIntList("dashed", c))
	assert.True(t, IsValidIntList("dashdot", c))
	assert.True(t, IsValidIntList("solid", c))

	assert.False(t, IsValidIntList("", c))
	assert.False(t, IsValidIntList("0 30", c))
	assert.False(t, IsValidIntList("30 100", c))
	assert.False(t, IsValidIntList("1 2 3 4 5 6 7", c))
	assert.False(t, IsValidIntList("wavy", c))

	dup := IntListConstraints{MinCount: 1, MaxCount: 9, Min: 1, Max: 9, NoDuplicates: true}
	assert.True(t, IsValidIntList("1 3 5", dup))
	assert.False(t, IsValidIntList("1 3 3", dup))
}

func TestIsValidFloatList(t *testing.T) {
	c := FloatListConstraints{MinCount: 1, MaxCount: 20, Min: -1e10, Max: 1e10}
	assert.True(t, IsValidFloatList("0.5 1 2.25", c))
	assert.False(t, IsValidFloatList("", c))
	assert.False(t, IsValidFloatList("0.5 abc", c))
}

func TestIsValidToken(t *testing.T) {
	assert.True(t, IsValidToken("data_01"))
	assert.True(t, IsValidToken("_x"))
	assert.False(t, IsValidToken("1data"))
	assert.False(t, IsValidToken("a b"))
	assert.False(t, IsValidToken(""))
}

func TestIsValidColorMapDef(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"myMap[00FF0000 80008000 FF0000FF]", true},
		{"m[00000000 FFFFFFFF]", true},
		{"myMap[10FF0000 FF0000FF]", false},            // first frame not at index 0
		{"myMap[00FF0000 80008000]", false},            // last frame not at index 255
		{"myMap[00FF0000 80008000 80FF0000 FF0000FF]", false}, // indices not strictly ascending
		{"myMap[00FF0000]", false},                     // too few frames
		{"jet[00FF0000 FF0000FF]", false},              // collides with a built-in name
		{"1map[00FF0000 FF0000FF]", false},             // bad name token
		{"myMap[00FF000 FF0000FF]", false},             // frame not eight hex digits
		{"myMap 00FF0000 FF0000FF", false},             // missing brackets
		{"grayscale", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidColorMapDef(tt.value, builtinColorMaps),
			"IsValidColorMapDef(%q)", tt.value)
	}

	// Eleven frames exceed the cap.
	long := "big[00111111 18111111 30111111 48111111 60111111 78111111 90111111 A8111111 C0111111 D8111111 FF111111]"
	assert.False(t, IsValidColorMapDef(long, builtinColorMaps))
}

func TestToMilliInches(t *testing.T) {
	v, ok := toMilliInches(Measure{Value: 0.02, Unit: UnitIn})
	assert.True(t, ok)
	assert.InDelta(t, 20, v, 1e-9)

	v, ok = toMilliInches(Measure{Value: 72, Unit: UnitPt})
	assert.True(t, ok)
	assert.InDelta(t, 1000, v, 1e-9)

	_, ok = toMilliInches(Measure{Value: 50, Unit: UnitPercent})
	assert.False(t, ok)
}
