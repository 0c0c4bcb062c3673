package normalize

import (
	"strconv"
	"strings"
)

// Dimensions is a parsed physical size in centimeters.
type Dimensions struct {
	WidthCM  float64
	HeightCM float64
}

// Named standard print formats used by the archive. Checked before any
// generic parsing so a named size never falls through to the splitter.
var namedSizes = map[string]Dimensions{
	"kabinettsporträtt": {WidthCM: 12, HeightCM: 16.5},
	"visitkort":         {WidthCM: 6.4, HeightCM: 10.4},
}

// ParseDimensions parses a raw dimension field: either a named standard
// size, or "W x H cm" / "W×H" with decimal commas. Malformed input
// reports false; no unit text ever leaks into the numeric fields.
func ParseDimensions(s string) (Dimensions, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dimensions{}, false
	}
	if dims, ok := namedSizes[strings.ToLower(s)]; ok {
		return dims, true
	}

	sep := ""
	switch {
	case strings.Contains(s, "×"):
		sep = "×"
	case strings.Contains(s, "x"):
		sep = "x"
	default:
		return Dimensions{}, false
	}

	parts := strings.SplitN(s, sep, 2)
	width, ok := parseMeasure(parts[0])
	if !ok {
		return Dimensions{}, false
	}
	height, ok := parseMeasure(parts[1])
	if !ok {
		return Dimensions{}, false
	}
	return Dimensions{WidthCM: width, HeightCM: height}, true
}

// parseMeasure reads the leading numeric token of one side of a
// dimension string, dropping trailing unit text such as "cm".
func parseMeasure(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	token := strings.Fields(s)[0]
	token = strings.ReplaceAll(token, ",", ".")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
