// Package pairing links related assets: the two derived halves of a
// stereo card, and potential duplicates of already-published assets
// found through the platform's reverse-link index.
package pairing

// Side suffixes of a stereo pair. One physical card yields two output
// records, each referencing the other as its other version.
const (
	SideA = "a"
	SideB = "b"
)

// Sides returns the two side suffixes of a stereo pair.
func Sides() [2]string {
	return [2]string{SideA, SideB}
}

// SideID derives the output identifier of one side.
func SideID(id, side string) string {
	return id + side
}

// SiblingSide returns the opposite side suffix, and false for anything
// that is not a side.
func SiblingSide(side string) (string, bool) {
	switch side {
	case SideA:
		return SideB, true
	case SideB:
		return SideA, true
	default:
		return "", false
	}
}

// Index is the precomputed cross-batch duplicate index: source URL →
// already-published asset title, built once per run from a reverse link
// search. A hit flags a potential duplicate; it never suppresses
// publication.
type Index map[string]string

// Lookup reports the published title for a source URL, if any.
func (idx Index) Lookup(url string) (string, bool) {
	title, ok := idx[url]
	return title, ok && title != ""
}
