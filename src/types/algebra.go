package types

import (
	"slices"
)

var primitives = []string{NameString, NameNumber, NameBoolean}

// UnionOf creates the normalized union of the given types. Members are flattened
// and deduplicated, literals are dropped when their primitive keyword is present
// and never is dropped. An empty union is never.
//
// NOTE: a union containing unknown is never, not unknown.
func UnionOf(types ...Type) Type {
	types = unique(flatten(types, KindUnion))
	if slices.ContainsFunc(types, IsUnknown) {
		return Never
	}
	for _, name := range primitives {
		if slices.ContainsFunc(types, func(t Type) bool { return IsKeyword(t, name) }) {
			types = slices.DeleteFunc(types, func(t Type) bool { return IsLiteral(t, name) })
		}
	}
	types = slices.DeleteFunc(types, IsNever)
	switch len(types) {
	case 0:
		return Never
	case 1:
		return types[0]
	}
	return &Union{elements: types, expr: fmtTypes(types, KindUnion, " | ")}
}

// IntersectionOf creates the normalized intersection of the given types. Members
// are flattened and deduplicated, any never makes the whole intersection never,
// keywords are dropped when a literal of the same primitive is present, records
// are merged into one and unknown is dropped. An empty intersection is unknown.
func IntersectionOf(types ...Type) Type {
	types = unique(flatten(types, KindIntersection))
	if slices.ContainsFunc(types, IsNever) {
		return Never
	}
	for _, name := range primitives {
		if slices.ContainsFunc(types, func(t Type) bool { return IsLiteral(t, name) }) {
			types = slices.DeleteFunc(types, func(t Type) bool { return IsKeyword(t, name) })
		}
	}
	types = mergeUnary(types, recordArgument, RecordOf)
	types = slices.DeleteFunc(types, IsUnknown)
	switch len(types) {
	case 0:
		return Unknown
	case 1:
		return types[0]
	}
	return &Intersection{elements: types, expr: fmtTypes(types, KindIntersection, " & ")}
}

// SpreadOf marks a type as the rest elements of a tuple.
func SpreadOf(t Type) Type {
	return &Spread{argument: t, expr: "..." + enclose(t, KindSpread)}
}

// TupleOf creates a tuple. Spreads of tuples are spliced in place and all other
// spreads are merged into a single spread of their intersection.
func TupleOf(types ...Type) Type {
	spliced := make([]Type, 0, len(types))
	for _, t := range types {
		if spread, ok := t.(*Spread); ok {
			if tuple, ok := spread.argument.(*Tuple); ok {
				spliced = append(spliced, tuple.elements...)
				continue
			}
		}
		spliced = append(spliced, t)
	}
	spliced = mergeUnary(spliced, spreadArgument, SpreadOf)
	return &Tuple{elements: spliced, expr: "[" + fmtTypes(spliced, KindTuple, ", ") + "]"}
}

// ArrayOf creates an array of t.
func ArrayOf(t Type) Type {
	return &Expression{expr: enclose(t, KindExpression) + "[]"}
}

// RecordOf creates an open string keyed mapping of t.
func RecordOf(t Type) Type {
	return &Record{argument: t, expr: "Record<string, " + t.String() + ">"}
}

// Exclude removes excluded from t. Only the trivial cases are resolved, anything
// else is left as a deferred Exclude<T, U> expression.
func Exclude(t, excluded Type) Type {
	switch {
	case IsNever(t):
		return Never
	case IsNever(excluded):
		return t
	case IsUnknown(excluded):
		return Never
	}
	return &Expression{expr: "Exclude<" + t.String() + ", " + excluded.String() + ">"}
}

func flatten(types []Type, kind Kind) []Type {
	flat := make([]Type, 0, len(types))
	for _, t := range types {
		switch tt := t.(type) {
		case *Union:
			if kind == KindUnion {
				flat = append(flat, flatten(tt.elements, kind)...)
				continue
			}
		case *Intersection:
			if kind == KindIntersection {
				flat = append(flat, flatten(tt.elements, kind)...)
				continue
			}
		}
		flat = append(flat, t)
	}
	return flat
}

// unique will remove any equal types keeping the first occurrence.
func unique(types []Type) []Type {
	result := make([]Type, 0, len(types))
	for _, t := range types {
		if !slices.ContainsFunc(result, func(other Type) bool { return Equal(t, other) }) {
			result = append(result, t)
		}
	}
	return result
}

func recordArgument(t Type) (Type, bool) {
	if rec, ok := t.(*Record); ok {
		return rec.argument, true
	}
	return nil, false
}

func spreadArgument(t Type) (Type, bool) {
	if spread, ok := t.(*Spread); ok {
		return spread.argument, true
	}
	return nil, false
}

// mergeUnary collapses every wrapper matched by unwrap into one wrapper of the
// intersection of their arguments, placed where the last one was. When that
// intersection is never all of them are dropped.
func mergeUnary(types []Type, unwrap func(Type) (Type, bool), wrap func(Type) Type) []Type {
	args := []Type{}
	last := -1
	for i, t := range types {
		if arg, ok := unwrap(t); ok {
			args = append(args, arg)
			last = i
		}
	}
	if last < 0 {
		return types
	}
	merged := IntersectionOf(args...)
	result := make([]Type, 0, len(types))
	for i, t := range types {
		if _, ok := unwrap(t); !ok {
			result = append(result, t)
		} else if i == last && !IsNever(merged) {
			result = append(result, wrap(merged))
		}
	}
	return result
}
