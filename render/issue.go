package render

import (
	"strings"
)

// Issue renders every configured field present in the record, one
// "Label  value" line per field with the labels aligned, in configuration
// order. Fields that are absent, hidden, or suppressed by their renderer
// produce no line.
func (c *Config) Issue(issue map[string]any, verbose bool) string {
	type line struct {
		label, value string
	}

	var lines []line
	width := 0
	for _, id := range c.order {
		value, present := issue[id]
		if !present {
			continue
		}
		out, ok := c.Render(id, value, issue, verbose)
		if !ok || out == "" {
			continue
		}
		label := c.byID[id].Name
		if label == "" {
			label = id
		}
		if len(label) > width {
			width = len(label)
		}
		lines = append(lines, line{label: label, value: out})
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.label)
		b.WriteString(strings.Repeat(" ", width-len(l.label)+1))
		b.WriteString(l.value)
		b.WriteByte('\n')
	}
	return b.String()
}
