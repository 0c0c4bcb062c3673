// Package record turns pre-parsed export attribute maps into typed
// records. Ingestion never fails: archival exports are known to have
// inconsistent tagging, so a missing tag degrades to an empty field.
package record

import "strings"

// Attrs is the output of the external export parser: every value a tag
// carried for one record, in document order. Missing tags are absent
// keys.
type Attrs map[string][]string

// Escaped entity sequences the export is known to contain, replaced
// with their literal characters before any field ever leaves ingestion.
var entityGlossary = map[string]string{
	"&Aacute;": "Á",
	"&aacute;": "á",
	"&Aring;":  "Å",
	"&aring;":  "å",
	"&Auml;":   "Ä",
	"&auml;":   "ä",
	"&apos;":   "'",
	"&eacute;": "é",
	"&egrave;": "è",
	"&Egrave;": "È",
	"&oacute;": "ó",
	"&Ouml;":   "Ö",
	"&ouml;":   "ö",
	"&uuml;":   "ü",
}

// CleanEntities applies the fixed entity substitution table.
func CleanEntities(s string) string {
	for entity, literal := range entityGlossary {
		s = strings.ReplaceAll(s, entity, literal)
	}
	return s
}

// Raw is one ingested record: every schema field present, cleaned and
// trimmed, empty string for anything the export did not carry.
// Immutable after ingestion.
type Raw struct {
	Schema string
	fields map[string]string
	multi  map[string][]string
}

// Ingest builds a Raw record from one attribute map according to the
// given schema. Unknown attribute keys are dropped, missing schema
// fields default to empty.
func Ingest(schema Schema, attrs Attrs) Raw {
	raw := Raw{
		Schema: schema.Name,
		fields: make(map[string]string, len(schema.Fields)),
		multi:  make(map[string][]string, len(schema.MultiFields)),
	}
	for _, field := range schema.Fields {
		value := ""
		if vs := attrs[field]; len(vs) > 0 {
			value = strings.TrimSpace(CleanEntities(vs[0]))
		}
		raw.fields[field] = value
	}
	for _, field := range schema.MultiFields {
		values := make([]string, 0, len(attrs[field]))
		for _, v := range attrs[field] {
			values = append(values, strings.TrimSpace(CleanEntities(v)))
		}
		raw.multi[field] = values
	}
	return raw
}

// Field returns the value of a single-value schema field.
func (r Raw) Field(name string) string {
	return r.fields[name]
}

// Values returns every value of a multi-value schema field, in export
// order.
func (r Raw) Values(name string) []string {
	return r.multi[name]
}

// ID returns the record identifier.
func (r Raw) ID() string {
	return r.fields["id_no"]
}
