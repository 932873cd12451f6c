package walk

import (
	"strings"

	"github.com/tanema/jstype/src/schema"
	"github.com/tanema/jstype/src/types"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Literal converts a decoded JSON value into the type that only allows that
// value. Arrays become tuples and objects become objects with every member
// required. Values outside the decoded value set are never.
func Literal(value any) types.Type {
	switch val := value.(type) {
	case string:
		return types.StringLiteral(val)
	case float64:
		return types.NumberLiteral(val)
	case bool:
		return types.BooleanLiteral(val)
	case nil:
		return types.Null
	case []any:
		elems := make([]types.Type, len(val))
		for i, item := range val {
			elems[i] = Literal(item)
		}
		return types.TupleOf(elems...)
	case *schema.Object:
		members := make([]types.Member, 0, val.Len())
		for _, m := range val.Members() {
			members = append(members, types.Member{Name: m.Key, Type: Literal(m.Value)})
		}
		return types.ObjectOf(members...)
	default:
		return types.Never
	}
}

func escapePointer(key string) string {
	return pointerEscaper.Replace(key)
}
