package platform

import (
	"context"
	"strings"

	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
)

// ListingSource reads curated mapping listings: pages of repeated row
// templates with name/category/wikidata parameters, maintained by hand
// and therefore only partially filled in.
type ListingSource struct {
	client      *Client
	rowTemplate string
}

// NewListingSource creates a row source over the platform client. The
// row template name identifies which transclusions on a listing page
// are mapping rows.
func NewListingSource(client *Client, rowTemplate string) *ListingSource {
	return &ListingSource{client: client, rowTemplate: rowTemplate}
}

// Rows fetches a listing page and returns its mapping rows in page
// order.
func (s *ListingSource) Rows(ctx context.Context, page string) ([]mapping.Row, error) {
	wikitext, err := s.client.PageWikitext(ctx, page)
	if err != nil {
		return nil, err
	}
	return ParseListingRows(wikitext, s.rowTemplate), nil
}

// ParseListingRows extracts every {{rowTemplate |param=value ...}}
// transclusion from listing wikitext. Unknown parameters are ignored,
// missing parameters stay empty.
func ParseListingRows(wikitext, rowTemplate string) []mapping.Row {
	var rows []mapping.Row
	marker := "{{" + rowTemplate
	rest := wikitext
	for {
		start := strings.Index(rest, marker)
		if start < 0 {
			break
		}
		rest = rest[start+len(marker):]
		end := strings.Index(rest, "}}")
		if end < 0 {
			break
		}
		rows = append(rows, parseRowParams(rest[:end]))
		rest = rest[end+2:]
	}
	return rows
}

func parseRowParams(body string) mapping.Row {
	var row mapping.Row
	for _, part := range strings.Split(body, "|") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			row.Name = value
		case "category":
			row.Category = value
		case "wikidata":
			row.Wikidata = value
		}
	}
	return row
}
