package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/jstype/src/lerrors"
)

func TestObject(t *testing.T) {
	t.Parallel()
	obj := NewObject(Member{"b", 1.0}, Member{"a", "x"}, Member{"b", 2.0})
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	val, ok := obj.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, val)
	assert.False(t, obj.Has("c"))
	assert.Equal(t, []Member{{"b", 2.0}, {"a", "x"}}, obj.Members())

	obj.Set("nothing", nil)
	val, ok = obj.Get("nothing")
	assert.True(t, ok)
	assert.Nil(t, val)

	var empty *Object
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has("a"))
	assert.Nil(t, empty.Keys())

	var zero Object
	zero.Set("a", true)
	assert.Equal(t, []string{"a"}, zero.Keys())
}

func TestParseJSON(t *testing.T) {
	t.Parallel()
	val, err := ParseJSON([]byte(`{
		"type": "object",
		"properties": {"zeta": {"type": "string"}, "alpha": {"enum": ["a\"b", 1.5, true, null, [1], {"k": "v"}]}},
		"required": []
	}`))
	require.NoError(t, err)

	root, ok := AsObject(val)
	require.True(t, ok)
	assert.Equal(t, []string{"type", "properties", "required"}, root.Keys())

	props, _ := root.Get("properties")
	propsObj, ok := AsObject(props)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha"}, propsObj.Keys())

	alpha, _ := propsObj.Get("alpha")
	enum, _ := alpha.(*Object).Get("enum")
	values, ok := AsArray(enum)
	require.True(t, ok)
	require.Len(t, values, 6)
	assert.Equal(t, `a"b`, values[0])
	assert.Equal(t, 1.5, values[1])
	assert.Equal(t, true, values[2])
	assert.Nil(t, values[3])
	assert.Equal(t, []any{1.0}, values[4])
	assert.Equal(t, NewObject(Member{"k", "v"}), values[5])

	required, _ := root.Get("required")
	assert.Equal(t, []any{}, required)
}

func TestParseJSONScalars(t *testing.T) {
	t.Parallel()
	cases := []struct {
		src      string
		expected any
	}{
		{`true`, true},
		{`false`, false},
		{`"str"`, "str"},
		{`42`, 42.0},
		{`null`, nil},
		{`[]`, []any{}},
		{`{}`, NewObject()},
	}

	for _, tc := range cases {
		val, err := ParseJSON([]byte(tc.src))
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.expected, val, tc.src)
	}
}

func TestParseJSONErrors(t *testing.T) {
	t.Parallel()
	for _, src := range []string{``, `{name: 'x'}`, `{"a": }`, `{"type": "string"}}`, `true false`} {
		_, err := ParseJSON([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	val, err := ParseYAML([]byte(`
type: object
properties:
  zeta: {type: string}
  alpha:
    enum: [red, 42, 1.5, true, ~, "7"]
required: [zeta]
`))
	require.NoError(t, err)
	root, ok := AsObject(val)
	require.True(t, ok)
	assert.Equal(t, []string{"type", "properties", "required"}, root.Keys())

	props, _ := root.Get("properties")
	assert.Equal(t, []string{"zeta", "alpha"}, props.(*Object).Keys())
	alpha, _ := props.(*Object).Get("alpha")
	enum, _ := alpha.(*Object).Get("enum")
	assert.Equal(t, []any{"red", 42.0, 1.5, true, nil, "7"}, enum)

	_, err = ParseYAML([]byte(""))
	assert.Error(t, err)
	_, err = ParseYAML([]byte("a: [1, 2"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Parallel()
	val, err := Parse("schema.yml", []byte("type: string"), ModeJSON)
	require.NoError(t, err)
	assert.Equal(t, NewObject(Member{"type", "string"}), val)

	val, err = Parse("<string>", []byte("type: string"), ModeYAML)
	require.NoError(t, err)
	assert.Equal(t, NewObject(Member{"type", "string"}), val)

	_, err = Parse("loose.json", []byte(`{type: 'string',}`), ModeJSON)
	var schemaErr *lerrors.Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, lerrors.DecodeErr, schemaErr.Kind)
	assert.Equal(t, "loose.json", schemaErr.Filename)

	val, err = Parse("trailing.json", []byte("{\"type\": \"string\"}  \n"), ModeJSON)
	require.NoError(t, err)
	assert.Equal(t, NewObject(Member{"type", "string"}), val)

	val, err = Parse("loose.json", []byte(`{type: 'string', enum: ['a', 'b',],}`), ModeJSON|ModeRepair)
	require.NoError(t, err)
	assert.Equal(t, NewObject(Member{"type", "string"}, Member{"enum", []any{"a", "b"}}), val)
}

func TestRepair(t *testing.T) {
	t.Parallel()
	repaired, err := Repair([]byte(`{'a': 1, b: [true,],}`))
	require.NoError(t, err)
	val, err := ParseJSON(repaired)
	require.NoError(t, err)
	assert.Equal(t, NewObject(Member{"a", 1.0}, Member{"b", []any{true}}), val)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	type name string
	cases := []struct {
		in       any
		expected any
	}{
		{nil, nil},
		{true, true},
		{"s", "s"},
		{name("n"), "n"},
		{3, 3.0},
		{uint8(7), 7.0},
		{float32(0.5), 0.5},
		{json.Number("12"), 12.0},
		{[]string{"a", "b"}, []any{"a", "b"}},
		{[2]int{1, 2}, []any{1.0, 2.0}},
		{[]any(nil), []any{}},
		{
			map[string]any{"type": "object", "required": []string{"a"}},
			NewObject(Member{"required", []any{"a"}}, Member{"type", "object"}),
		},
		{map[name]bool{"b": true, "a": false}, NewObject(Member{"a", false}, Member{"b", true})},
		{NewObject(Member{"x", 1.0}), NewObject(Member{"x", 1.0})},
		{func() {}, nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Normalize(tc.in), "%#v", tc.in)
	}
}

func TestNormalizeCycle(t *testing.T) {
	t.Parallel()
	cyclic := map[string]any{"type": "array"}
	cyclic["items"] = cyclic
	obj, ok := AsObject(Normalize(cyclic))
	require.True(t, ok)
	items, ok := obj.Get("items")
	assert.True(t, ok)
	assert.Nil(t, items)
	typ, _ := obj.Get("type")
	assert.Equal(t, "array", typ)
}
