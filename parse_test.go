package transmog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "a,b,c", want: []string{"a", "b", "c"}},
		{in: " a , b ", want: []string{"a", "b"}},
		{in: "solo", want: []string{"solo"}},
		{in: "", want: nil},
		{in: "   ", want: nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitList(tt.in), "split of %q", tt.in)
	}
}

func TestSplitQuotedList(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        []string
		expectError bool
	}{
		{
			name: "quoted tokens keep commas and spaces",
			in:   `"one, actually","two"`,
			want: []string{"one, actually", "two"},
		},
		{
			name: "mixed quoting",
			in:   `plain,"quoted token"`,
			want: []string{"plain", "quoted token"},
		},
		{
			name: "unquoted only",
			in:   "a,b",
			want: []string{"a", "b"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "quoted newline stays inside its token",
			in:   "\"a\nb\",c",
			want: []string{"a\nb", "c"},
		},
		{
			name:        "unquoted newline starts a second record",
			in:          "a,b\nc,d",
			expectError: true,
		},
		{
			name:        "unterminated quote",
			in:          `"oops`,
			expectError: true,
		},
		{
			name:        "quote in the middle of a quoted token",
			in:          `"a"b",c`,
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitQuotedList(tt.in)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
