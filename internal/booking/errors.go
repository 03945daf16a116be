package booking

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed booking input.  It is returned
// before any side effect has happened and carries one message per
// offending field so the caller can surface field-level errors.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid booking input: " + strings.Join(parts, "; ")
}
