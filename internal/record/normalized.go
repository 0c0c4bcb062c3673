package record

import "github.com/wikimedia-sverige/batchinfo/internal/normalize"

// PersonRef is one depicted or described person. AuthorityCode is the
// archive's own authority identifier, taken straight from the export.
// ExternalID is only ever populated from a successful mapping lookup,
// never guessed.
type PersonRef struct {
	RawName       string
	Name          string
	Gender        normalize.Gender
	AuthorityCode string
	ExternalID    string
}

// Normalized is the typed form of one record. Typed fields are either
// fully parsed or absent; free-text fields that feed exact-match
// mapping lookups keep their ingested value untouched.
type Normalized struct {
	ID    string
	Title string

	Event      *normalize.Date
	DecadeYear int
	Birth      *normalize.Date
	Death      *normalize.Date

	Dimensions   *normalize.Dimensions
	Descriptions map[string]string
	Depicted     []PersonRef
	Gender       normalize.Gender
	Professions  []string
	Keywords     []string

	Creator    string
	Ensemble   string
	PlayTitle  string
	ImageType  string
	Collection string
	URL        string

	// Side distinguishes the two derived halves of a paired record,
	// empty for ordinary records.
	Side string
}
