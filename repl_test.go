package jstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFeed(t *testing.T) {
	t.Parallel()
	sess := &session{options: DefaultOptions()}

	res, done, err := sess.feed(`{"type": "array",`)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, res)
	assert.True(t, sess.pending())

	res, done, err = sess.feed(` "items": {"type": "string"}}`)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "string[]", res)
	assert.False(t, sess.pending())

	res, done, err = sess.feed("   ")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, res)

	res, done, err = sess.feed("true")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "unknown", res)

	_, done, err = sess.feed(`{"type": }`)
	assert.True(t, done)
	assert.Error(t, err)
	assert.False(t, sess.pending())
}

func TestIncomplete(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src      string
		expected bool
	}{
		{`{`, true},
		{`{"a": [1, 2]`, true},
		{`{"a": "}`, true},
		{`{"a": "}"}`, false},
		{`{"a": "\"}"}`, false},
		{`[]`, false},
		{`}`, false},
		{`false`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, incomplete(tt.src), tt.src)
	}
}
