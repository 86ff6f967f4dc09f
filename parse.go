package transmog

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// splitList splits a comma-separated value list, trimming whitespace around
// each element. An empty or blank raw value is an empty list, not a list of
// one empty element. Commas inside elements cannot be escaped here; fields
// whose values may contain commas use [splitQuotedList] instead.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitQuotedList parses a comma-separated list whose elements may be
// double-quoted. A quoted element is a single token that may contain literal
// commas and spaces; the quotes are stripped from the result. The whole
// value must be one list: an unquoted newline starts a second CSV record,
// and accepting only the first would silently drop the rest, so that is an
// error.
func splitQuotedList(raw string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.TrimLeadingSpace = true
	tokens, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, errors.New("value continues past the first line")
	}
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return tokens, nil
}
