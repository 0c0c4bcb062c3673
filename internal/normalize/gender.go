package normalize

import "strings"

// Gender is the canonical two-value gender enum. The zero value means
// the source field was absent or unrecognized.
type Gender string

const (
	GenderUnknown Gender = ""
	GenderWoman   Gender = "woman"
	GenderMan     Gender = "man"
)

// ParseGender maps the archive's Swedish gender vocabulary onto the
// canonical enum. Unrecognized values stay unknown, never guessed.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kvinna":
		return GenderWoman
	case "man":
		return GenderMan
	default:
		return GenderUnknown
	}
}
