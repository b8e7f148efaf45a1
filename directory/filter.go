package directory

import (
	"strings"

	"github.com/ortelius/userdir-backend/model"
)

// NormalizeQuery trims and lower-cases a search query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the records whose search key contains the normalized query,
// in their original order. An empty query matches every record.
func Filter(records []model.UserRecord, query string) []model.UserRecord {
	needle := NormalizeQuery(query)

	matched := make([]model.UserRecord, 0, len(records))
	for _, record := range records {
		if record.Matches(needle) {
			matched = append(matched, record)
		}
	}
	return matched
}
