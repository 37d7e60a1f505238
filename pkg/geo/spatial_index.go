package geo

import (
	"sort"

	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// SpatialIndex answers the two candidate queries of the assembler: which boundaries contain a
// point and which streets are near it. read only after NewSpatialIndex, safe for concurrent use.
type SpatialIndex struct {
	boundaries   []Boundary
	boundaryTree rtree.RTreeG[int]
	streets      []Street
	streetTree   rtree.RTreeG[int]
}

func NewSpatialIndex(boundaries []Boundary, streets []Street) *SpatialIndex {
	idx := &SpatialIndex{
		boundaries: boundaries,
		streets:    streets,
	}
	for i, b := range boundaries {
		idx.boundaryTree.Insert(bboxMin(b.Bound), bboxMax(b.Bound), i)
	}
	for i, s := range streets {
		bound := s.Line.Bound()
		idx.streetTree.Insert(bboxMin(bound), bboxMax(bound), i)
	}
	return idx
}

func bboxMin(b orb.Bound) [2]float64 {
	return [2]float64{b.Min.Lon(), b.Min.Lat()}
}

func bboxMax(b orb.Bound) [2]float64 {
	return [2]float64{b.Max.Lon(), b.Max.Lat()}
}

// ContainingBoundaries returns the boundaries containing p, most specific first: level ascending,
// then smaller area first, then id.
func (idx *SpatialIndex) ContainingBoundaries(p orb.Point) []Boundary {
	pt := [2]float64{p.Lon(), p.Lat()}

	result := []Boundary{}
	idx.boundaryTree.Search(pt, pt, func(_, _ [2]float64, i int) bool {
		if IsPointInPolygon(p, idx.boundaries[i].Polygon) {
			result = append(result, idx.boundaries[i])
		}
		return true
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].Level != result[j].Level {
			return result[i].Level < result[j].Level
		}
		if result[i].Area != result[j].Area {
			return result[i].Area < result[j].Area
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Boundaries is ContainingBoundaries as assembler candidates.
func (idx *SpatialIndex) Boundaries(p orb.Point) []gazetteer.Entity {
	return boundaryEntities(idx.ContainingBoundaries(p))
}

// Ancestors returns b itself followed by the boundaries with a higher level containing its label point.
func (idx *SpatialIndex) Ancestors(b Boundary) []gazetteer.Entity {
	ancestors := []gazetteer.Entity{b.Entity}
	for _, parent := range idx.ContainingBoundaries(LabelPoint(b.Polygon)) {
		if parent.ID == b.ID || parent.Level <= b.Level {
			continue
		}
		ancestors = append(ancestors, parent.Entity)
	}
	return ancestors
}

// NearbyStreets returns the streets within radiusMeters of p, closest first.
func (idx *SpatialIndex) NearbyStreets(p orb.Point, radiusMeters float64) []gazetteer.Entity {
	bound := RadiusBound(p, radiusMeters)

	type candidate struct {
		street Street
		dist   float64
	}
	candidates := []candidate{}
	idx.streetTree.Search(bboxMin(bound), bboxMax(bound), func(_, _ [2]float64, i int) bool {
		d := DistanceToLine(p, idx.streets[i].Line)
		if d <= radiusMeters {
			candidates = append(candidates, candidate{street: idx.streets[i], dist: d})
		}
		return true
	})

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].street.ID < candidates[j].street.ID
	})

	streets := make([]gazetteer.Entity, 0, len(candidates))
	for _, c := range candidates {
		streets = append(streets, c.street.Entity)
	}
	return streets
}

func (idx *SpatialIndex) BoundariesCount() int {
	return len(idx.boundaries)
}

func boundaryEntities(boundaries []Boundary) []gazetteer.Entity {
	entities := make([]gazetteer.Entity, 0, len(boundaries))
	for _, b := range boundaries {
		entities = append(entities, b.Entity)
	}
	return entities
}
