// Package types contains the type expressions produced from a schema and the
// constructors that compose them. Every constructor returns a normalized value:
// unions and intersections are flattened and deduplicated, literals and keywords
// subsume each other, records and tuple spreads are merged. Two types are
// considered equal when they have the same kind and the same rendering, so the
// rendering returned by String() is the canonical form of the expression.
//
// Types are never modified after construction. Composite values keep their own
// copy of their elements and only hand out copies.
package types //nolint:revive
