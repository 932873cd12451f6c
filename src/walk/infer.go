package walk

import (
	"slices"

	"github.com/tanema/jstype/src/schema"
	"github.com/tanema/jstype/src/types"
)

const (
	typeArray   = "array"
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNull    = "null"
	typeNumber  = "number"
	typeObject  = "object"
	typeString  = "string"
)

var (
	// inferred is checked in order when a schema has no explicit type, the first
	// group with a keyword present decides the type. additionalItems and
	// dependencies are the pre 2019-09 spellings.
	inferred = []struct {
		name     string
		keywords []string
	}{
		{typeArray, []string{
			"items", "prefixItems", "additionalItems", "unevaluatedItems", "contains",
			"minContains", "maxContains", "minItems", "maxItems", "uniqueItems",
		}},
		{typeNumber, []string{"multipleOf", "minimum", "exclusiveMinimum", "maximum", "exclusiveMaximum"}},
		{typeObject, []string{
			"properties", "additionalProperties", "unevaluatedProperties", "required",
			"patternProperties", "propertyNames", "minProperties", "maxProperties",
			"dependentRequired", "dependencies",
		}},
		{typeString, []string{"minLength", "maxLength", "pattern"}},
	}

	droppedKeywords = []string{
		"contains", "minContains", "maxContains", "minItems", "maxItems", "uniqueItems",
		"multipleOf", "minimum", "exclusiveMinimum", "maximum", "exclusiveMaximum",
		"patternProperties", "propertyNames", "minProperties", "maxProperties",
		"dependentRequired", "dependentSchemas", "dependencies",
		"minLength", "maxLength", "pattern", "format",
		"if", "then", "else", "$ref",
	}
)

// typeName resolves the type keyword, falling back to inferring it from the
// structural keywords present. A type that is not a single string resolves to
// the empty string.
func typeName(n node) string {
	if val, ok := n.obj.Get("type"); ok && val != nil {
		name, _ := schema.AsString(val)
		return name
	}
	for _, group := range inferred {
		if slices.ContainsFunc(group.keywords, n.obj.Has) {
			return group.name
		}
	}
	return ""
}

func (w *Walker) baseType(n node) types.Type {
	switch typeName(n) {
	case typeArray:
		return w.arrayType(n)
	case typeBoolean:
		return types.Boolean
	case typeNull:
		return types.Null
	case typeInteger, typeNumber:
		return types.Number
	case typeObject:
		return w.objectType(n)
	case typeString:
		return types.String
	default:
		return types.Unknown
	}
}

// arrayType builds a tuple when there is a fixed prefix and an array otherwise.
// The rest type comes from items, additionalItems or unevaluatedItems in that
// order.
func (w *Walker) arrayType(n node) types.Type {
	var prefix []types.Type
	hasPrefix := false
	if n.obj.Has("prefixItems") {
		hasPrefix = isArray(n, "prefixItems")
		prefix = w.subschemas(n, "prefixItems")
	} else if isArray(n, "items") {
		hasPrefix = true
		prefix = w.subschemas(n, "items")
	}

	var rest types.Type
	switch {
	case n.obj.Has("items") && !isArray(n, "items"):
		rest = w.property(n, "items")
	case n.obj.Has("additionalItems"):
		rest = w.property(n, "additionalItems")
	default:
		rest = w.property(n, "unevaluatedItems")
	}

	if !hasPrefix {
		return types.ArrayOf(rest)
	} else if types.IsNever(rest) {
		return types.TupleOf(prefix...)
	}
	return types.TupleOf(append(prefix, types.SpreadOf(types.ArrayOf(rest)))...)
}

// objectType builds an object of the declared properties intersected with a
// record of the catch-all type. Without declared properties it is simply object.
func (w *Walker) objectType(n node) types.Type {
	var catchAll types.Type
	switch {
	case n.obj.Has("additionalProperties"):
		catchAll = w.property(n, "additionalProperties")
	case n.obj.Has("unevaluatedProperties"):
		catchAll = w.property(n, "unevaluatedProperties")
	default:
		catchAll = w.walk(w.config.AdditionalProperties, n.path, n.depth)
	}

	val, _ := n.obj.Get("properties")
	props, ok := schema.AsObject(val)
	if !ok {
		return types.NonPrimitive
	}
	required := requiredProperties(n)
	members := make([]types.Member, 0, props.Len())
	for _, prop := range props.Members() {
		members = append(members, types.Member{
			Name:       prop.Key,
			Type:       w.walk(prop.Value, n.path+"/properties/"+escapePointer(prop.Key), n.depth+1),
			Descriptor: types.Descriptor{Optional: !slices.Contains(required, prop.Key)},
		})
	}
	if types.IsNever(catchAll) {
		return types.ObjectOf(members...)
	}
	return types.IntersectionOf(types.ObjectOf(members...), types.RecordOf(catchAll))
}

func requiredProperties(n node) []string {
	val, _ := n.obj.Get("required")
	list, ok := schema.AsArray(val)
	if !ok {
		return nil
	}
	names := []string{}
	for _, item := range list {
		if name, ok := schema.AsString(item); ok {
			names = append(names, name)
		}
	}
	return names
}
