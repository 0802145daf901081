package schema

import (
	"fmt"
	"strings"
)

// Columns maps resolved column names to their position in a header row.
type Columns struct {
	headers []string
	index   map[string]int
}

// ResolveColumns builds a Columns from a header row, trimming surrounding
// whitespace from each header. Every name in required must be present
// (after trimming, case-insensitively); a missing name fails immediately,
// naming the headers that are actually available, so a bad extract is
// diagnosable without opening the file.
func ResolveColumns(headers []string, required ...string) (Columns, error) {
	c := Columns{index: make(map[string]int, len(headers))}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		c.headers = append(c.headers, h)
		if _, dup := c.index[strings.ToLower(h)]; !dup {
			c.index[strings.ToLower(h)] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := c.index[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Columns{}, fmt.Errorf("required columns %s not found, have %s",
			quoteList(missing), quoteList(c.headers))
	}
	return c, nil
}

// Lookup returns the position of a column by name, case-insensitively.
func (c Columns) Lookup(name string) (int, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// Headers returns the trimmed header names in table order.
func (c Columns) Headers() []string {
	return c.headers
}
