package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	user := map[string]any{
		"displayName":  "Pat Doe",
		"emailAddress": "pat@example.com",
	}

	tests := []struct {
		name     string
		renderer string
		value    any
		want     string
		ok       bool
	}{
		{name: "string", renderer: "string", value: "hello", want: "hello", ok: true},
		{name: "string of number", renderer: "string", value: 4.0, want: "4", ok: true},
		{name: "name", renderer: "name", value: map[string]any{"name": "Blocker"}, want: "Blocker", ok: true},
		{name: "value", renderer: "value", value: map[string]any{"value": "One"}, want: "One", ok: true},
		{name: "key", renderer: "key", value: map[string]any{"key": "PROJ-12"}, want: "PROJ-12", ok: true},
		{name: "name missing key suppresses", renderer: "name", value: map[string]any{"value": "x"}, ok: false},
		{name: "name of non-object suppresses", renderer: "name", value: "plain", ok: false},
		{name: "user", renderer: "user", value: user, want: "Pat Doe - pat@example.com", ok: true},
		{
			name:     "name_list",
			renderer: "name_list",
			value:    []any{map[string]any{"name": "1.0.1"}, map[string]any{"name": "1.0.2"}},
			want:     "1.0.1, 1.0.2",
			ok:       true,
		},
		{
			name:     "value_list",
			renderer: "value_list",
			value:    []any{map[string]any{"value": "One"}, map[string]any{"value": "Two"}},
			want:     "One, Two",
			ok:       true,
		},
		{
			name:     "user_list",
			renderer: "user_list",
			value:    []any{user},
			want:     "pat@example.com",
			ok:       true,
		},
		{name: "array of any", renderer: "array", value: []any{"a", "b"}, want: "a, b", ok: true},
		{name: "array of strings", renderer: "array", value: []string{"a", "b"}, want: "a, b", ok: true},
		{name: "array of non-list suppresses", renderer: "array", value: "a,b", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Builtin(tt.renderer)
			require.True(t, ok)
			got, ok := f(tt.value, nil)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuiltinUnknown(t *testing.T) {
	_, ok := Builtin("sparkline")
	assert.False(t, ok)
	assert.Contains(t, Builtins(), "name_list")
}

func TestDateRendering(t *testing.T) {
	got, ok := Date("not a date", nil)
	assert.True(t, ok)
	assert.Equal(t, "not a date", got)

	got, ok = Date("2021-03-04T10:00:00.000-0500", nil)
	assert.True(t, ok)
	assert.Equal(t, "2021-03-04", got)

	_, ok = Date(12345, nil)
	assert.False(t, ok)
}

func TestPrettyDate(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{name: "seconds", ts: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes", ts: now.Add(-5 * time.Minute), want: "5 minutes ago"},
		{name: "hours", ts: now.Add(-3 * time.Hour), want: "3 hours ago"},
		{name: "days", ts: now.Add(-2 * 24 * time.Hour), want: "2 days ago"},
		{name: "older than a week", ts: now.Add(-30 * 24 * time.Hour), want: "2026-07-24"},
		{name: "future", ts: now.Add(24 * time.Hour), want: "2026-08-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prettyDate(tt.ts, now))
		})
	}
}
