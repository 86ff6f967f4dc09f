package transmog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldMetadata describes one field the tracking API accepts: its canonical
// id, the human-typed aliases that resolve to it, its declared type, and —
// for enumerated types — the legal values in their canonical casing.
//
// Entries are externally supplied (a "describe fields" call against the
// tracker) and read-only once handed to [NewCatalog].
type FieldMetadata struct {
	// ID is the canonical field identifier used in the output record,
	// e.g. "priority" or "customfield_1234568".
	ID string `json:"id"`

	// Name is the human-readable display name, e.g. "Fix Versions".
	// It is always a valid alias for the field.
	Name string `json:"name,omitempty"`

	// Nyms are additional input aliases beyond ID and Name.
	Nyms []string `json:"nyms,omitempty"`

	// Type selects the coercion rule applied to raw input values.
	Type FieldType `json:"type"`

	// AllowedValues is the ordered set of canonical values for enumerated
	// types. Matching against it is case-insensitive; output always uses
	// the casing recorded here.
	AllowedValues []string `json:"allowed_values,omitempty"`
}

// Validate checks that the entry is usable: a non-empty id, a known type,
// and allowed values wherever coercion must match against them.
func (f FieldMetadata) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required),
		validation.Field(&f.Type, validation.Required, validation.By(knownFieldType)),
		validation.Field(&f.AllowedValues, validation.When(f.Type.needsAllowedValues(),
			validation.Required.Error("allowed values required for enumerated type"))),
	)
}

func knownFieldType(value any) error {
	t, _ := value.(FieldType)
	_, err := ParseFieldType(string(t))
	return err
}

// displayName is what validation errors call the field.
func (f *FieldMetadata) displayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// aliases returns every lowercased input key that resolves to this field:
// the id, the display name, the declared nyms, and the nym form of each.
func (f *FieldMetadata) aliases() []string {
	names := make([]string, 0, 2*(len(f.Nyms)+2))
	add := func(s string) {
		if s == "" {
			return
		}
		names = append(names, lower(s), Nym(s))
	}
	add(f.ID)
	add(f.Name)
	for _, n := range f.Nyms {
		add(n)
	}
	return names
}
