package render

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Func renders one field value to display text. fields is the whole issue
// record, for renderers that need sibling context (e.g. suppressing a
// reporter who is also the creator). ok false suppresses the field.
type Func func(value any, fields map[string]any) (string, bool)

// builtins is the registered-function table that display directives resolve
// against by name. Renderers here must stay generic: nothing tied to a
// specific tracker instance or custom field.
var builtins = map[string]Func{
	"string":     String,
	"key":        keyOf("key"),
	"value":      keyOf("value"),
	"name":       keyOf("name"),
	"user":       User,
	"user_list":  listOf("emailAddress"),
	"email_list": listOf("emailAddress"),
	"value_list": listOf("value"),
	"name_list":  listOf("name"),
	"array":      Array,
	"date":       Date,
}

// Builtin returns the named builtin renderer.
func Builtin(name string) (Func, bool) {
	f, ok := builtins[name]
	return f, ok
}

// Builtins returns the sorted names of all builtin renderers.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders any value via fmt.
func String(value any, _ map[string]any) (string, bool) {
	return fmt.Sprint(value), true
}

// keyOf renders one key out of an object value, e.g. {"name": "Blocker"}.
func keyOf(key string) Func {
	return func(value any, _ map[string]any) (string, bool) {
		obj, ok := value.(map[string]any)
		if !ok {
			return "", false
		}
		v, ok := obj[key]
		if !ok {
			return "", false
		}
		return fmt.Sprint(v), true
	}
}

// User renders a user object as "Display Name - email".
func User(value any, _ map[string]any) (string, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		return "", false
	}
	name, _ := obj["displayName"].(string)
	email, _ := obj["emailAddress"].(string)
	if name == "" && email == "" {
		return "", false
	}
	return name + " - " + email, true
}

// listOf renders a list of objects as the comma-joined values of one key.
func listOf(key string) Func {
	return func(value any, _ map[string]any) (string, bool) {
		items, ok := value.([]any)
		if !ok {
			return "", false
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return "", false
			}
			parts = append(parts, fmt.Sprint(obj[key]))
		}
		return strings.Join(parts, ", "), true
	}
}

// Array renders a list of plain values comma-joined.
func Array(value any, _ map[string]any) (string, bool) {
	switch items := value.(type) {
	case []string:
		return strings.Join(items, ", "), true
	case []any:
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", "), true
	}
	return "", false
}

// dateLayouts are the timestamp formats trackers commonly emit.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339,
	"2006-01-02",
}

// Date renders a tracker timestamp as a relative age when recent, or the
// plain date otherwise.
func Date(value any, _ map[string]any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return prettyDate(ts, time.Now()), true
		}
	}
	// Unparseable timestamps pass through rather than vanish.
	return s, true
}

func prettyDate(ts, now time.Time) string {
	age := now.Sub(ts)
	switch {
	case age < 0 || age >= 7*24*time.Hour:
		return ts.Format("2006-01-02")
	case age >= 24*time.Hour:
		return fmt.Sprintf("%d days ago", int(age.Hours()/24))
	case age >= time.Hour:
		return fmt.Sprintf("%d hours ago", int(age.Hours()))
	case age >= time.Minute:
		return fmt.Sprintf("%d minutes ago", int(age.Minutes()))
	}
	return "just now"
}
