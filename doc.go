// Package transmog converts loosely-typed human input into the strictly-typed
// field payloads an issue-tracking REST API expects.
//
// Build a [Catalog] from the field metadata the tracker's "describe fields"
// endpoint returns, then feed it user-entered key/value pairs:
//
//	cat, err := transmog.NewCatalog(meta)
//	fields, err := transmog.Transmogrify(cat, map[string]string{
//	    "Priority":     "blocker",
//	    "Fix Versions": "1.0.1,1.0.2",
//	})
//
// Keys are matched case-insensitively against every alias a field declares;
// keys that resolve to no field are dropped silently. Values are coerced per
// the field's declared type, and enumerated values are checked against the
// catalog's allowed values; a recognized key with an invalid value fails the
// whole call with an error identifying the field.
//
// The resulting [Fields] map marshals directly into a create/update request
// body.
//
// Sub-packages:
//   - render – the inverse direction: API field values to display strings
package transmog
