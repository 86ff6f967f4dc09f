package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Display is a field's display directive. In YAML it is either a bool
// (false hides the field, true forces plain string rendering) or the name
// of a builtin renderer. A custom Func can only be attached in code.
type Display struct {
	Hidden   bool
	Renderer string
	Func     Func
}

// UnmarshalYAML accepts the two config-file forms: bool or renderer name.
func (d *Display) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		*d = Display{Hidden: !b}
		return nil
	}
	var s string
	if err := node.Decode(&s); err == nil {
		*d = Display{Renderer: s}
		return nil
	}
	return fmt.Errorf("display must be a bool or a renderer name, got %q", node.Value)
}

// FieldConfig configures how one field is displayed.
type FieldConfig struct {
	// ID is the canonical field id this entry applies to.
	ID string `yaml:"id"`

	// Name is the label printed next to the rendered value.
	Name string `yaml:"name"`

	// Display is the display directive; nil means render the raw value as
	// a plain string.
	Display *Display `yaml:"display"`

	// Verbose hides the field unless verbose rendering is requested.
	Verbose bool `yaml:"verbose"`

	// Immutable marks a base entry user overrides may not replace.
	// Not settable from config files.
	Immutable bool `yaml:"-"`

	// Code is unsupported and rejected at load time. Earlier generations
	// of this tool evaluated config-supplied expressions here; the
	// renderer-name table and the Func seam replace that.
	Code string `yaml:"code"`
}

// ignoreFields are never configurable: they are inherently positional or
// complicated (bodies, attachments, links) and handled by the host.
var ignoreFields = map[string]bool{
	"attachment":  true,
	"comment":     true,
	"description": true,
	"issuekey":    true,
	"issuelinks":  true,
	"subtasks":    true,
	"summary":     true,
	"thumbnail":   true,
}

// Config is an ordered display configuration keyed by field id. Build one
// with [New] or [Default], refine it with [Config.Merge]; a Config is
// immutable once built and safe to share.
type Config struct {
	order []string
	byID  map[string]FieldConfig
}

// New builds a Config from the given entries, preserving order. Entries
// for ignored ids are dropped.
func New(fields []FieldConfig) *Config {
	c := &Config{byID: make(map[string]FieldConfig, len(fields))}
	for _, f := range fields {
		if ignoreFields[f.ID] {
			continue
		}
		if _, seen := c.byID[f.ID]; !seen {
			c.order = append(c.order, f.ID)
		}
		c.byID[f.ID] = f
	}
	return c
}

// Merge layers user overrides on top of c and returns a new Config.
//
// Base-only entries keep their relative order and come first; overridden
// and new entries follow in override order. An immutable base entry wins
// over its override but moves to the override's position. An override
// without a display directive inherits the base one.
func (c *Config) Merge(overrides []FieldConfig) *Config {
	merged := make([]FieldConfig, 0, len(c.order)+len(overrides))
	overridden := make(map[string]bool, len(overrides))
	for _, ov := range overrides {
		overridden[ov.ID] = true
	}

	for _, id := range c.order {
		if !overridden[id] {
			merged = append(merged, c.byID[id])
		}
	}
	for _, ov := range overrides {
		base, has := c.byID[ov.ID]
		switch {
		case has && base.Immutable:
			merged = append(merged, base)
		case has && ov.Display == nil:
			ov.Display = base.Display
			merged = append(merged, ov)
		default:
			merged = append(merged, ov)
		}
	}
	return New(merged)
}

// Load reads field display overrides from YAML. Entries carrying a code
// expression are rejected outright.
func Load(r io.Reader) ([]FieldConfig, error) {
	var fields []FieldConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&fields); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for _, f := range fields {
		if f.ID == "" {
			return nil, fmt.Errorf("field override missing id")
		}
		if f.Code != "" {
			return nil, fmt.Errorf("field %q: code expressions are not supported, use a named renderer", f.ID)
		}
	}
	return fields, nil
}

// IDs returns the configured field ids in display order.
func (c *Config) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup returns the configuration for a field id.
func (c *Config) Lookup(id string) (FieldConfig, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Render renders one field value per its directive. ok is false when the
// field is unconfigured, hidden, verbose-only (without verbose set), or
// its renderer suppresses the value.
func (c *Config) Render(id string, value any, fields map[string]any, verbose bool) (string, bool) {
	fc, ok := c.byID[id]
	if !ok || value == nil {
		return "", false
	}
	if fc.Verbose && !verbose {
		return "", false
	}
	d := fc.Display
	if d == nil {
		return fmt.Sprint(value), true
	}
	switch {
	case d.Hidden:
		return "", false
	case d.Func != nil:
		return d.Func(value, fields)
	case d.Renderer != "":
		f, ok := Builtin(d.Renderer)
		if !ok {
			return fmt.Sprintf("<invalid renderer: %s for %s>", d.Renderer, id), true
		}
		return f(value, fields)
	}
	return fmt.Sprint(value), true
}
