package transmog

// Fields is the API-shaped output record, keyed by canonical field id.
// It marshals directly into a create/update request body.
type Fields map[string]any

// Transmogrify converts user-entered key/value pairs into the typed field
// payload the tracking API requires.
//
// Each key is resolved against the catalog; keys no field claims are
// dropped silently (callers routinely pass superset templates). Resolved
// values are coerced per the field's declared type. The first invalid value
// aborts the whole call with a [ValidationErrors] keyed by the offending
// field's id: a malformed value for a field the catalog governs must fail
// loud before any network request is assembled from the result.
//
// The call is pure: no I/O, no retained state, and neither the catalog nor
// the input map is mutated.
func Transmogrify(cat *Catalog, input map[string]string) (Fields, error) {
	out := make(Fields, len(input))
	for key, raw := range input {
		f, ok := cat.Resolve(key)
		if !ok {
			continue
		}
		v, err := coerceValue(f, raw)
		if err != nil {
			return nil, ValidationErrors{f.ID: err}
		}
		out[f.ID] = v
	}
	return out, nil
}

// coerceValue dispatches on the field's type tag. Unknown tags cannot occur
// for fields that came through NewCatalog; the verbatim fallback mirrors
// how trackers treat types they have no special shape for.
func coerceValue(f *FieldMetadata, raw string) (any, error) {
	fn, ok := coercers[f.Type]
	if !ok {
		return raw, nil
	}
	return fn(f, raw)
}
