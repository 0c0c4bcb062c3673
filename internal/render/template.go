// Package render assembles the final metadata block and filename for
// one record. Everything here is a pure function of its inputs; no
// platform calls.
package render

import (
	"fmt"
	"strings"
)

// Field is one labeled value of the metadata block. Order matters.
type Field struct {
	Label string
	Value string
}

// Info is the rendered metadata block of one record: an ordered list of
// labeled fields inside a named block template, plus the category
// lists, already deterministic.
type Info struct {
	Template    string
	Fields      []Field
	ContentCats []string
	MetaCats    []string
}

// Wikitext renders the block template followed by the category links.
// Empty fields keep their slot so curators see what the export lacked.
func (i Info) Wikitext() string {
	var b strings.Builder
	b.WriteString("{{" + i.Template + "\n")
	for _, field := range i.Fields {
		b.WriteString(fmt.Sprintf("| %s = %s\n", field.Label, field.Value))
	}
	b.WriteString("}}\n")
	for _, cat := range i.MetaCats {
		b.WriteString(fmt.Sprintf("[[Category:%s]]\n", cat))
	}
	for _, cat := range i.ContentCats {
		b.WriteString(fmt.Sprintf("[[Category:%s]]\n", cat))
	}
	return b.String()
}

// Gallery wraps filenames in a gallery block for the other-versions
// field.
func Gallery(filenames ...string) string {
	if len(filenames) == 0 {
		return ""
	}
	return fmt.Sprintf("<gallery>\n%s\n</gallery>", strings.Join(filenames, "\n"))
}

// LanguageDescription wraps a description in its language template,
// ensuring the sentence is terminated.
func LanguageDescription(lang, text string) string {
	if text == "" {
		return ""
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return fmt.Sprintf("{{%s|%s}}", lang, text)
}
