package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinRings(t *testing.T) {
	t.Run("two ways, second reversed", func(t *testing.T) {
		segments := [][]orb.Point{
			{{0, 0}, {1, 0}, {1, 1}},
			{{0, 0}, {0, 1}, {1, 1}},
		}
		rings := joinRings(segments)
		require.Len(t, rings, 1)
		assert.Equal(t, orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}, rings[0])
	})

	t.Run("already closed way", func(t *testing.T) {
		rings := joinRings([][]orb.Point{square(0, 0, 1, 1)})
		require.Len(t, rings, 1)
		assert.True(t, rings[0].Closed())
	})

	t.Run("broken chain is dropped", func(t *testing.T) {
		rings := joinRings([][]orb.Point{
			{{0, 0}, {1, 0}},
			{{5, 5}, {6, 6}},
		})
		assert.Empty(t, rings)
	})
}

func TestBuildMultiPolygon(t *testing.T) {
	outer := []orb.Ring{square(0, 0, 10, 10), square(20, 20, 30, 30)}
	inner := []orb.Ring{square(22, 22, 24, 24)}

	mp := buildMultiPolygon(outer, inner)
	require.Len(t, mp, 2)
	assert.Len(t, mp[0], 1)
	assert.Len(t, mp[1], 2)
}
