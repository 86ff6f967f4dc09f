package transmog

import (
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// coerceFunc turns one raw input string into the API shape for a field.
type coerceFunc func(f *FieldMetadata, raw string) (any, error)

// coercers is the closed dispatch table from type tag to coercion rule.
// Scalar enumerated types (option, version, priority) never split on comma;
// a comma is just a character in the candidate string. Array variants
// always split: "One,Two,Three" against a scalar option field is one
// invalid candidate, not three options.
var coercers = map[FieldType]coerceFunc{
	TypeString:       coerceVerbatim,
	TypeAny:          coerceVerbatim,
	TypeUser:         coerceVerbatim,
	TypeNumber:       coerceNumber,
	TypePriority:     coercePriority,
	TypeOption:       coerceOption,
	TypeOptionArray:  coerceOptionArray,
	TypeVersion:      coerceVersion,
	TypeVersionArray: coerceVersionArray,
	TypeUserArray:    coerceNamedArray,
	TypeGroupArray:   coerceNamedArray,
	TypeStringArray:  coerceStringArray,
}

// defaultSeverities is the fallback priority vocabulary for catalogs that
// do not enumerate their own.
var defaultSeverities = []string{
	"Blocker", "Critical", "Major", "Normal", "Minor", "Trivial",
}

// canonical matches val case-insensitively against the allowed values and
// returns the catalog's canonical casing.
func canonical(allowed []string, val string) (string, bool) {
	for _, av := range allowed {
		if strings.EqualFold(av, val) {
			return av, true
		}
	}
	return "", false
}

func coerceVerbatim(_ *FieldMetadata, raw string) (any, error) {
	return raw, nil
}

func coerceNumber(f *FieldMetadata, raw string) (any, error) {
	if !govalidator.IsFloat(raw) {
		return nil, errNotANumber.SetParams(map[string]any{
			"field": f.displayName(),
			"value": raw,
		})
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errNotANumber.SetParams(map[string]any{
			"field": f.displayName(),
			"value": raw,
		})
	}
	return n, nil
}

func coercePriority(f *FieldMetadata, raw string) (any, error) {
	word := cases.Title(language.English).String(raw)
	allowed := f.AllowedValues
	if len(allowed) == 0 {
		allowed = defaultSeverities
	}
	cv, ok := canonical(allowed, word)
	if !ok {
		return nil, notAllowed(f, raw)
	}
	return Named{Name: cv}, nil
}

func coerceOption(f *FieldMetadata, raw string) (any, error) {
	cv, ok := canonical(f.AllowedValues, raw)
	if !ok {
		return nil, notAllowed(f, raw)
	}
	return Option{Value: cv}, nil
}

// coerceOptionArray is all-or-nothing: one bad token fails the whole value.
func coerceOptionArray(f *FieldMetadata, raw string) (any, error) {
	tokens := splitList(raw)
	out := make([]Option, 0, len(tokens))
	for _, tok := range tokens {
		cv, ok := canonical(f.AllowedValues, tok)
		if !ok {
			return nil, notAllowed(f, tok)
		}
		out = append(out, Option{Value: cv})
	}
	return out, nil
}

func coerceVersion(f *FieldMetadata, raw string) (any, error) {
	cv, ok := canonical(f.AllowedValues, raw)
	if !ok {
		return nil, notAllowed(f, raw)
	}
	return Named{Name: cv}, nil
}

// coerceVersionArray wraps each token without existence validation; version
// arrays commonly name versions that do not exist yet.
func coerceVersionArray(_ *FieldMetadata, raw string) (any, error) {
	return namedList(splitList(raw)), nil
}

func coerceNamedArray(_ *FieldMetadata, raw string) (any, error) {
	return namedList(splitList(raw)), nil
}

func coerceStringArray(f *FieldMetadata, raw string) (any, error) {
	tokens, err := splitQuotedList(raw)
	if err != nil {
		return nil, errMalformedList.SetParams(map[string]any{
			"field": f.displayName(),
			"value": raw,
		})
	}
	return tokens, nil
}

func namedList(tokens []string) []Named {
	out := make([]Named, len(tokens))
	for i, tok := range tokens {
		out[i] = Named{Name: tok}
	}
	return out
}
