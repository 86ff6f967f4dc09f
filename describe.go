package transmog

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Schema returns an OpenAPI 3 description of the payload this catalog
// accepts: one object property per field id, typed per the field's
// coercion rule, with allowed values surfaced as enums. Hosts use it to
// answer "describe fields" without another round-trip to the tracker.
func (c *Catalog) Schema() *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	obj.Properties = make(openapi3.Schemas, len(c.fields))
	for _, f := range c.fields {
		obj.Properties[f.ID] = openapi3.NewSchemaRef("", fieldSchema(f))
	}
	return obj
}

func fieldSchema(f *FieldMetadata) *openapi3.Schema {
	var s *openapi3.Schema
	switch f.Type {
	case TypeNumber:
		s = openapi3.NewFloat64Schema()
	case TypePriority, TypeVersion:
		s = namedSchema(f.AllowedValues)
	case TypeOption:
		s = optionSchema(f.AllowedValues)
	case TypeOptionArray:
		s = arrayOf(optionSchema(f.AllowedValues))
	case TypeVersionArray, TypeUserArray, TypeGroupArray:
		s = arrayOf(namedSchema(nil))
	case TypeStringArray:
		s = arrayOf(openapi3.NewStringSchema())
	default: // string, any, user: plain strings on the wire
		s = openapi3.NewStringSchema()
	}
	s.Title = f.Name
	return s
}

// namedSchema describes the {"name": ...} wrapper shape.
func namedSchema(enum []string) *openapi3.Schema {
	return wrapperSchema("name", enum)
}

// optionSchema describes the {"value": ...} wrapper shape.
func optionSchema(enum []string) *openapi3.Schema {
	return wrapperSchema("value", enum)
}

func wrapperSchema(prop string, enum []string) *openapi3.Schema {
	inner := openapi3.NewStringSchema()
	if len(enum) > 0 {
		vals := make([]any, len(enum))
		for i, v := range enum {
			vals[i] = v
		}
		inner.WithEnum(vals...)
	}
	return openapi3.NewObjectSchema().WithProperty(prop, inner)
}

func arrayOf(elem *openapi3.Schema) *openapi3.Schema {
	arr := openapi3.NewArraySchema()
	arr.Items = openapi3.NewSchemaRef("", elem)
	return arr
}
