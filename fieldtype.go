package transmog

import "fmt"

// FieldType is the declared type tag of a catalog field. The set is closed:
// adding a type means adding a coercion rule to the dispatch table in
// coerce.go, never branching on the tag elsewhere.
type FieldType string

const (
	TypeString       FieldType = "string"
	TypeAny          FieldType = "any"
	TypeNumber       FieldType = "number"
	TypePriority     FieldType = "priority"
	TypeOption       FieldType = "option"
	TypeOptionArray  FieldType = "array_of_options"
	TypeVersion      FieldType = "version"
	TypeVersionArray FieldType = "array_of_versions"
	TypeUser         FieldType = "user"
	TypeUserArray    FieldType = "array_of_users"
	TypeStringArray  FieldType = "array_of_strings"
	TypeGroupArray   FieldType = "array_of_groups"
)

var fieldTypes = map[FieldType]bool{
	TypeString:       true,
	TypeAny:          true,
	TypeNumber:       true,
	TypePriority:     true,
	TypeOption:       true,
	TypeOptionArray:  true,
	TypeVersion:      true,
	TypeVersionArray: true,
	TypeUser:         true,
	TypeUserArray:    true,
	TypeStringArray:  true,
	TypeGroupArray:   true,
}

// ParseFieldType converts a type tag from field metadata into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(s)
	if !fieldTypes[t] {
		return "", fmt.Errorf("unknown field type %q", s)
	}
	return t, nil
}

// Enumerated reports whether values of this type are matched against the
// field's allowed values during coercion.
func (t FieldType) Enumerated() bool {
	switch t {
	case TypePriority, TypeOption, TypeOptionArray, TypeVersion, TypeVersionArray:
		return true
	}
	return false
}

// needsAllowedValues reports whether coercion cannot succeed without the
// catalog supplying allowed values. Priority falls back to the default
// severity vocabulary and array_of_versions tokens are passed through, so
// neither requires them.
func (t FieldType) needsAllowedValues() bool {
	return t.Enumerated() && t != TypePriority && t != TypeVersionArray
}
