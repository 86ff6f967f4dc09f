// Package render is the inverse of transmog: it turns API field values from
// a full issue record back into human-readable text.
//
// Rendering is configuration-as-data. Each field gets a display directive
// (hide it, name a builtin renderer, or supply a custom [Func]) and a
// [Config] merges base definitions with user overrides. Configs reference
// builtin renderers by name only; there is deliberately no way to embed
// code in a config file. Programmatic rendering goes through the [Func]
// seam, which only the host application can populate.
package render
