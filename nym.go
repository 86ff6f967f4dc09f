package transmog

import "strings"

func lower(s string) string {
	return strings.ToLower(s)
}

// Nym normalizes a human-readable field name into the flag-friendly alias
// users actually type: lowercased, spaces and dashes folded to underscores,
// everything else non-alphanumeric dropped. "Fix Versions" becomes
// "fix_versions".
func Nym(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('_')
		case r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
