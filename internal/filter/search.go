package filter

import (
	"strings"

	"github.com/mwantia/gauchogo/internal/data"
)

// SearchResult carries Prompt when the query was empty and nothing was
// searched; the page should ask the user to type instead of listing rows.
type SearchResult struct {
	Query  string
	Prompt bool
	Rows   []data.Course
}

// Search matches the query case-insensitively against code, title and
// notes. A row matches if any field contains the query.
func Search(rows []data.Course, query string) SearchResult {
	q := data.Fold(query)
	if q == "" {
		return SearchResult{Prompt: true}
	}

	out := make([]data.Course, 0)
	for _, row := range rows {
		for _, field := range []string{row.Code, row.Title, row.Notes} {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, row)
				break
			}
		}
	}

	return SearchResult{Query: strings.TrimSpace(query), Rows: out}
}
