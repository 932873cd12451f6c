// Package jstype turns JSON Schema documents into TypeScript type expressions.
// The output is a single canonical expression, built from unions, intersections,
// tuples, arrays, object literals, Record<string, T> and Exclude<T, U>, that
// describes the values a schema accepts as closely as the notation allows.
//
//	Constraints that have no type equivalent (patterns, ranges, formats, lengths)
//	are dropped and oneOf is treated like anyOf. if/then/else and $ref are not
//	followed. Anything that cannot be expressed becomes unknown, anything that
//	can never match becomes never, so a transform never fails once the document
//	has been decoded.
//
//	Object properties keep the order they have in the document for JSON and YAML
//	sources. Go maps passed to Transform have no order, so their keys are sorted.
package jstype
