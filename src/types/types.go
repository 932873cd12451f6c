package types

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type (
	// Kind discriminates the different shapes a Type can have.
	Kind int
	// Type is a single normalized type expression.
	Type interface {
		fmt.Stringer
		Kind() Kind
		isType()
	}
	// Keyword is a primitive token of the type notation like string or never.
	Keyword struct{ name string }
	// Literal is a type that only allows a single string, number or boolean value.
	Literal struct {
		value any
		expr  string
	}
	// Union describes a type that can match any of its elements.
	Union struct {
		elements []Type
		expr     string
	}
	// Intersection describes a type that must match all of its elements.
	Intersection struct {
		elements []Type
		expr     string
	}
	// Spread is the rest element of a tuple.
	Spread struct {
		argument Type
		expr     string
	}
	// Tuple is a positional sequence, optionally ending in a Spread.
	Tuple struct {
		elements []Type
		expr     string
	}
	// Record is an open string keyed mapping to a single value type.
	Record struct {
		argument Type
		expr     string
	}
	// Expression is an opaque composite like an array or an exclusion.
	Expression struct{ expr string }
)

const (
	// KindKeyword is the kind of a Keyword.
	KindKeyword Kind = iota
	// KindLiteral is the kind of a Literal.
	KindLiteral
	// KindUnion is the kind of a Union.
	KindUnion
	// KindIntersection is the kind of an Intersection.
	KindIntersection
	// KindSpread is the kind of a Spread.
	KindSpread
	// KindTuple is the kind of a Tuple.
	KindTuple
	// KindRecord is the kind of a Record.
	KindRecord
	// KindObject is the kind of an Object.
	KindObject
	// KindExpression is the kind of an Expression.
	KindExpression
)

const (
	// NameUnknown is the top type, every value matches it.
	NameUnknown = "unknown"
	// NameNever is the bottom type, no value matches it.
	NameNever = "never"
	// NameString is a label for the string type.
	NameString = "string"
	// NameNumber is a label for the number type.
	NameNumber = "number"
	// NameBoolean is a label for the boolean type.
	NameBoolean = "boolean"
	// NameNull is a label for the null type.
	NameNull = "null"
	// NameObject is a label for the non primitive object type.
	NameObject = "object"
)

var (
	// Unknown is the top type.
	Unknown Type = NewKeyword(NameUnknown)
	// Never is the bottom type.
	Never Type = NewKeyword(NameNever)
	// String matches any string.
	String Type = NewKeyword(NameString)
	// Number matches any number.
	Number Type = NewKeyword(NameNumber)
	// Boolean matches true and false.
	Boolean Type = NewKeyword(NameBoolean)
	// Null matches null only.
	Null Type = NewKeyword(NameNull)
	// NonPrimitive matches any value that is not a primitive.
	NonPrimitive Type = NewKeyword(NameObject)

	kindNames = map[Kind]string{
		KindKeyword:      "keyword",
		KindLiteral:      "literal",
		KindUnion:        "union",
		KindIntersection: "intersection",
		KindSpread:       "spread",
		KindTuple:        "tuple",
		KindRecord:       "record",
		KindObject:       "object",
		KindExpression:   "expression",
	}

	quoteEscaper = strings.NewReplacer(`'`, `\'`)
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NewKeyword creates a keyword type. Keywords with the same name are equal.
func NewKeyword(name string) Type { return &Keyword{name: name} }

// StringLiteral creates a quoted literal type for a single string value.
func StringLiteral(value string) Type {
	return &Literal{value: value, expr: "'" + quoteEscaper.Replace(value) + "'"}
}

// NumberLiteral creates an unquoted literal type for a single number.
func NumberLiteral(value float64) Type {
	return &Literal{value: value, expr: formatNumber(value)}
}

// BooleanLiteral creates an unquoted literal type for true or false.
func BooleanLiteral(value bool) Type {
	return &Literal{value: value, expr: strconv.FormatBool(value)}
}

// Name is the keyword token.
func (t *Keyword) Name() string { return t.name }

func (t *Keyword) Kind() Kind          { return KindKeyword }
func (t *Keyword) String() string      { return t.name }
func (t *Literal) Kind() Kind          { return KindLiteral }
func (t *Literal) String() string      { return t.expr }
func (t *Union) Kind() Kind            { return KindUnion }
func (t *Union) String() string        { return t.expr }
func (t *Intersection) Kind() Kind     { return KindIntersection }
func (t *Intersection) String() string { return t.expr }
func (t *Spread) Kind() Kind           { return KindSpread }
func (t *Spread) String() string       { return t.expr }
func (t *Tuple) Kind() Kind            { return KindTuple }
func (t *Tuple) String() string        { return t.expr }
func (t *Record) Kind() Kind           { return KindRecord }
func (t *Record) String() string       { return t.expr }
func (t *Expression) Kind() Kind       { return KindExpression }
func (t *Expression) String() string   { return t.expr }

func (*Keyword) isType()      {}
func (*Literal) isType()      {}
func (*Union) isType()        {}
func (*Intersection) isType() {}
func (*Spread) isType()       {}
func (*Tuple) isType()        {}
func (*Record) isType()       {}
func (*Expression) isType()   {}

// Value is the string, float64 or bool this literal stands for.
func (t *Literal) Value() any { return t.value }

// Primitive returns the keyword name that subsumes this literal.
func (t *Literal) Primitive() string {
	switch t.value.(type) {
	case string:
		return NameString
	case float64:
		return NameNumber
	default:
		return NameBoolean
	}
}

// Elements returns a copy of the union members.
func (t *Union) Elements() []Type { return slices.Clone(t.elements) }

// Elements returns a copy of the intersection members.
func (t *Intersection) Elements() []Type { return slices.Clone(t.elements) }

// Elements returns a copy of the tuple positions.
func (t *Tuple) Elements() []Type { return slices.Clone(t.elements) }

// Argument is the type of the rest elements.
func (t *Spread) Argument() Type { return t.argument }

// Argument is the value type of the record.
func (t *Record) Argument() Type { return t.argument }

// Equal reports whether two types are the same expression.
func Equal(a, b Type) bool {
	return a.Kind() == b.Kind() && a.String() == b.String()
}

// IsKeyword checks if the type is the keyword with the given name.
func IsKeyword(t Type, name string) bool {
	kw, ok := t.(*Keyword)
	return ok && kw.name == name
}

// IsUnknown checks for the top type.
func IsUnknown(t Type) bool { return IsKeyword(t, NameUnknown) }

// IsNever checks for the bottom type.
func IsNever(t Type) bool { return IsKeyword(t, NameNever) }

// IsLiteral checks if the type is a literal of the given primitive.
func IsLiteral(t Type, primitive string) bool {
	lit, ok := t.(*Literal)
	return ok && lit.Primitive() == primitive
}

// enclose renders t as an operand of an expression of the given kind. Unions are
// wrapped inside intersections, and both unions and intersections are wrapped
// anywhere else. Nothing is wrapped inside a union or as a tuple element.
func enclose(t Type, within Kind) string {
	var wrap bool
	switch within {
	case KindUnion, KindTuple:
		wrap = false
	case KindIntersection:
		wrap = t.Kind() == KindUnion
	default:
		wrap = t.Kind() == KindUnion || t.Kind() == KindIntersection
	}
	if wrap {
		return "(" + t.String() + ")"
	}
	return t.String()
}

func fmtTypes(types []Type, within Kind, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = enclose(t, within)
	}
	return strings.Join(parts, sep)
}

// formatNumber renders a number the way the notation writes numeric literals:
// integers without a fraction, exponents only outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
