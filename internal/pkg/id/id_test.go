package id

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesAndSorts(t *testing.T) {
	a, b := New(), New()
	_, err := ulid.ParseStrict(a)
	require.NoError(t, err)
	assert.Len(t, a, ulid.EncodedSize)
	assert.Less(t, a, b)
}
