package ingest

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateFormats is the ordered list of layouts tried when parsing a
// date cell. The order matters: more specific layouts come first.
var DefaultDateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseDate parses a date cell against each layout in turn. An empty or
// whitespace-only cell is an absent value, not an error. A non-empty
// cell matching no layout returns an error so the caller can degrade the
// field and warn.
func ParseDate(value string, layouts []string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if len(layouts) == 0 {
		layouts = DefaultDateFormats
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unparseable date %q", value)
}
