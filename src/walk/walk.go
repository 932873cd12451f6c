// Package walk compiles a decoded schema into a type expression. The walker is
// a recursive descent over the schema tree: every node is turned into the
// intersection of its enum, const, allOf, anyOf, oneOf and type facets, after
// which unevaluated items or properties and not are applied.
//
// Walking never fails. Anything that cannot be expressed as a type degrades to
// unknown (no information) or never (impossible).
package walk

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/tanema/jstype/src/conf"
	"github.com/tanema/jstype/src/schema"
	"github.com/tanema/jstype/src/types"
)

type (
	// Config is the configuration for how the Walker treats a schema.
	Config struct {
		// AdditionalProperties decides the catch-all type of objects that declare
		// neither additionalProperties nor unevaluatedProperties. True allows any
		// additional property, false allows none.
		AdditionalProperties bool
		// MaxDepth stops walking nodes nested deeper than this, they become unknown.
		// Zero or less means no limit.
		MaxDepth int
		// Logger receives debug output about keywords that are parsed but dropped.
		Logger *slog.Logger
	}
	// Walker turns schema nodes into types. It holds no state between walks and
	// can be shared.
	Walker struct {
		config Config
		logger *slog.Logger
	}
	node struct {
		obj   *schema.Object
		path  string
		depth int
	}
)

// DefaultConfig returns the permissive configuration.
func DefaultConfig() Config {
	return Config{
		AdditionalProperties: true,
		MaxDepth:             conf.MAXDEPTH,
	}
}

// New creates a walker with the given configuration.
func New(config Config) *Walker {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Walker{config: config, logger: logger}
}

// Walk compiles a decoded schema into a type. The schema is either a boolean or
// an *schema.Object, true is unknown and false is never.
func (w *Walker) Walk(root any) types.Type {
	return w.walk(root, "#", 0)
}

func (w *Walker) walk(value any, path string, depth int) types.Type {
	if w.config.MaxDepth > 0 && depth > w.config.MaxDepth {
		w.logger.Warn("schema nested too deep", "path", path, "maxDepth", w.config.MaxDepth)
		return types.Unknown
	}
	switch val := value.(type) {
	case bool:
		if val {
			return types.Unknown
		}
		return types.Never
	case *schema.Object:
		if val == nil {
			return types.Unknown
		}
		return w.walkObject(node{obj: val, path: path, depth: depth})
	default:
		w.logger.Debug("schema is not an object or boolean", "path", path)
		return types.Unknown
	}
}

func (w *Walker) walkObject(n node) types.Type {
	w.logDropped(n)
	result := types.IntersectionOf(
		w.enum(n),
		w.constant(n),
		types.IntersectionOf(w.subschemas(n, "allOf")...),
		w.union(n, "anyOf"),
		w.union(n, "oneOf"),
		w.baseType(n),
	)
	if n.obj.Has("unevaluatedItems") {
		if items := w.property(n, "unevaluatedItems"); !types.IsNever(items) {
			result = types.TupleOf(types.SpreadOf(result), types.SpreadOf(types.ArrayOf(items)))
		}
	} else if n.obj.Has("unevaluatedProperties") {
		if props := w.property(n, "unevaluatedProperties"); !types.IsNever(props) {
			result = types.IntersectionOf(result, types.RecordOf(props))
		}
		// unevaluatedProperties finishes the node, not is not applied.
		return result
	}
	if n.obj.Has("not") {
		result = types.Exclude(result, w.property(n, "not"))
	}
	return result
}

func (w *Walker) enum(n node) types.Type {
	val, _ := n.obj.Get("enum")
	values, ok := schema.AsArray(val)
	if !ok {
		return types.Unknown
	}
	literals := make([]types.Type, len(values))
	for i, v := range values {
		literals[i] = Literal(v)
	}
	return types.UnionOf(literals...)
}

func (w *Walker) constant(n node) types.Type {
	if val, ok := n.obj.Get("const"); ok {
		return Literal(val)
	}
	return types.Unknown
}

// union walks an anyOf or oneOf list. oneOf is treated like anyOf, exclusivity
// between the branches is not expressible.
func (w *Walker) union(n node, key string) types.Type {
	if !isArray(n, key) {
		return types.Unknown
	}
	return types.UnionOf(w.subschemas(n, key)...)
}

// property walks the schema stored under key, unknown when absent.
func (w *Walker) property(n node, key string) types.Type {
	if val, ok := n.obj.Get(key); ok {
		return w.walk(val, n.path+"/"+key, n.depth+1)
	}
	return types.Unknown
}

// subschemas walks every schema in the array stored under key. It returns nil
// when the key does not hold an array.
func (w *Walker) subschemas(n node, key string) []types.Type {
	val, _ := n.obj.Get(key)
	list, ok := schema.AsArray(val)
	if !ok {
		return nil
	}
	result := make([]types.Type, len(list))
	for i, item := range list {
		result[i] = w.walk(item, n.path+"/"+key+"/"+strconv.Itoa(i), n.depth+1)
	}
	return result
}

func isArray(n node, key string) bool {
	val, _ := n.obj.Get(key)
	_, ok := schema.AsArray(val)
	return ok
}

// logDropped reports keywords that are understood but have no type equivalent.
func (w *Walker) logDropped(n node) {
	for _, key := range droppedKeywords {
		if n.obj.Has(key) {
			w.logger.Debug("keyword not expressible as a type", "keyword", key, "path", n.path)
		}
	}
}
