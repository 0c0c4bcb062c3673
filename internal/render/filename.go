package render

import (
	"regexp"
	"strings"
)

// Characters the target platform forbids or mangles in filenames, each
// replaced with a harmless stand-in.
var illegalChars = strings.NewReplacer(
	":", "-",
	"/", "-",
	"\\", "-",
	"#", "-",
	"[", "(",
	"]", ")",
	"{", "(",
	"}", ")",
	"<", "-",
	">", "-",
	"|", "-",
	"\"", "'",
)

var filenameSpaces = regexp.MustCompile(`\s+`)

// Filename derives the output filename stem from the record title,
// provider code and identifier: "{title} - {provider} - {id}" with
// illegal characters substituted and whitespace collapsed to
// underscores. The file extension is the asset matcher's concern.
func Filename(title, provider, id string) string {
	stem := cleanPart(title) + " - " + cleanPart(provider) + " - " + cleanPart(id)
	return filenameSpaces.ReplaceAllString(stem, "_")
}

func cleanPart(s string) string {
	s = illegalChars.Replace(s)
	return strings.TrimSpace(filenameSpaces.ReplaceAllString(s, " "))
}
