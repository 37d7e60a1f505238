package geo

import (
	"testing"

	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityIDs(entities []gazetteer.Entity) []string {
	ids := []string{}
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return ids
}

func testIndex() *SpatialIndex {
	boundaries := []Boundary{
		NewBoundary("relation/1", map[string]string{"admin_level": "2", "name": "Country"}, 130,
			orb.MultiPolygon{{square(0, 0, 1, 1)}}),
		NewBoundary("relation/2", map[string]string{"place": "city", "name": "City"}, 70,
			orb.MultiPolygon{{square(0.1, 0.1, 0.5, 0.5)}}),
		NewBoundary("relation/3", map[string]string{"admin_level": "8", "name": "Big"}, 80,
			orb.MultiPolygon{{square(0.0, 0.0, 0.6, 0.6)}}),
		NewBoundary("relation/4", map[string]string{"admin_level": "8", "name": "Small"}, 80,
			orb.MultiPolygon{{square(0.2, 0.2, 0.4, 0.4)}}),
		NewBoundary("relation/5", map[string]string{"place": "city", "name": "Elsewhere"}, 70,
			orb.MultiPolygon{{square(0.7, 0.7, 0.9, 0.9)}}),
	}
	streets := []Street{
		NewStreet("way/1", map[string]string{"highway": "residential", "name": "Far Street"},
			orb.LineString{{0.3, 0.31}, {0.31, 0.31}}),
		NewStreet("way/2", map[string]string{"highway": "residential", "name": "Near Street"},
			orb.LineString{{0.3, 0.3005}, {0.31, 0.3005}}),
		NewStreet("way/3", map[string]string{"highway": "primary", "name": "Other Street"},
			orb.LineString{{0.8, 0.8}, {0.81, 0.8}}),
	}
	return NewSpatialIndex(boundaries, streets)
}

func TestContainingBoundaries(t *testing.T) {
	idx := testIndex()

	got := idx.Boundaries(orb.Point{0.3, 0.3})
	assert.Equal(t, []string{"relation/2", "relation/4", "relation/3", "relation/1"}, entityIDs(got))

	got = idx.Boundaries(orb.Point{0.55, 0.55})
	assert.Equal(t, []string{"relation/3", "relation/1"}, entityIDs(got))

	assert.Empty(t, idx.Boundaries(orb.Point{5, 5}))
	assert.Equal(t, 5, idx.BoundariesCount())
}

func TestAncestors(t *testing.T) {
	idx := testIndex()

	city := idx.ContainingBoundaries(orb.Point{0.3, 0.3})[0]
	require.Equal(t, "relation/2", city.ID)

	ancestors := idx.Ancestors(city)
	assert.Equal(t, []string{"relation/2", "relation/4", "relation/3", "relation/1"}, entityIDs(ancestors))
}

func TestNearbyStreets(t *testing.T) {
	idx := testIndex()

	got := idx.NearbyStreets(orb.Point{0.305, 0.3}, 2000)
	assert.Equal(t, []string{"way/2", "way/1"}, entityIDs(got))

	got = idx.NearbyStreets(orb.Point{0.305, 0.3}, 100)
	assert.Equal(t, []string{"way/2"}, entityIDs(got))

	assert.Empty(t, idx.NearbyStreets(orb.Point{0.5, 0.0}, 100))
}
