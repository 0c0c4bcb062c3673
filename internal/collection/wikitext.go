package collection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/normalize"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// infoTemplate is the block template every collection renders into.
const infoTemplate = "Musikverket-image"

// library is the holding department prefix.
const library = "Musik- och teaterbiblioteket"

func departmentField(collection string) string {
	if collection == "" {
		return library
	}
	return fmt.Sprintf("%s, %s", library, collection)
}

// dateField renders the event date: the ISO form when a date parsed, a
// decade template when the source was decade-granular, empty otherwise.
func dateField(rec *record.Normalized) string {
	switch {
	case rec.Event != nil:
		return rec.Event.String()
	case rec.DecadeYear != 0:
		return fmt.Sprintf("{{other date|decade|%d}}", rec.DecadeYear)
	default:
		return ""
	}
}

// sizeField renders parsed dimensions in the platform's size template.
func sizeField(dims *normalize.Dimensions) string {
	if dims == nil {
		return ""
	}
	return fmt.Sprintf("{{Size|cm|%s|%s}}",
		strconv.FormatFloat(dims.WidthCM, 'f', -1, 64),
		strconv.FormatFloat(dims.HeightCM, 'f', -1, 64))
}

// depictedField joins the cleaned names of every depicted person.
func depictedField(rec *record.Normalized) string {
	if len(rec.Depicted) == 0 {
		return ""
	}
	names := make([]string, 0, len(rec.Depicted))
	for _, person := range rec.Depicted {
		names = append(names, person.Name)
	}
	return strings.Join(names, " / ")
}

func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

// sourceField renders the provider attribution block. The high
// resolution link is included only when the record carries a source
// URL and the collection publishes one.
func sourceField(id, url string, highRes bool) string {
	infoLink := "{{Musikverket-link|" + id + "}}"
	text := "Swedish Performing Arts Agency: " + infoLink
	if highRes && url != "" {
		text += fmt.Sprintf(", [%s high resolution]", url)
	}
	return text + "\n{{Musikverket cooperation project}}"
}
