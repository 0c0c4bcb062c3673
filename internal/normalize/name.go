package normalize

import (
	"regexp"
	"strings"
)

var (
	bracketed      = regexp.MustCompile(`\(.*?\)`)
	multipleSpaces = regexp.MustCompile(` +`)
)

// FlipName turns an inverted "Surname, Forename" into natural order.
// Names without a comma are already natural and pass through unchanged.
func FlipName(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		return collapseSpaces(s)
	}
	parts := strings.SplitN(s, ",", 2)
	return collapseSpaces(strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0]))
}

// CleanName produces a display name from an archival name string:
// parenthetical qualifiers are dropped, inverted order is flipped, and
// a birth-name segment introduced by "f." is kept after the flipped
// married name.
func CleanName(s string) string {
	if strings.Contains(s, "f.") {
		parts := strings.SplitN(s, "f.", 2)
		born := strings.TrimSpace(strings.SplitN(strings.TrimSpace(parts[1]), "(", 2)[0])
		return FlipName(parts[0]) + " f. " + born
	}
	return FlipName(strings.TrimSpace(strings.SplitN(s, "(", 2)[0]))
}

// StripBrackets removes parenthetical qualifiers from a name.
func StripBrackets(s string) string {
	if !strings.Contains(s, "(") {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(bracketed.ReplaceAllString(s, ""))
}

// SplitOtherNames splits a ";"-delimited list of alternate name forms,
// flipping each into natural order. Empty segments are dropped.
func SplitOtherNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ";") {
		name := FlipName(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(multipleSpaces.ReplaceAllString(s, " "))
}
