package pkguid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, id, int64(0))
	assert.LessOrEqual(t, id, int64(1023))
}

func TestSnowflakeGenerateUnique(t *testing.T) {
	gen, err := NewSnowflake()
	require.NoError(t, err)

	assert.NotEqual(t, gen.Generate(), gen.Generate())
}

func TestSnowflakeNodeRejectsOutOfRange(t *testing.T) {
	_, err := NewSnowflakeNode(4096)
	assert.Error(t, err, "node id outside 0..1023")

	gen, err := NewSnowflakeNode(7)
	require.NoError(t, err)
	assert.Positive(t, gen.Generate())
}
