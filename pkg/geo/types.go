package geo

import (
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type NodeMapContainer struct {
	nodeMap map[osm.NodeID]orb.Point
}

func NewNodeMapContainer() NodeMapContainer {
	return NodeMapContainer{nodeMap: make(map[osm.NodeID]orb.Point)}
}

func (nm *NodeMapContainer) SetNode(id osm.NodeID, p orb.Point) {
	nm.nodeMap[id] = p
}

func (nm *NodeMapContainer) GetNode(id osm.NodeID) (orb.Point, bool) {
	p, ok := nm.nodeMap[id]
	return p, ok
}

// AddressPoint is a node or a building carrying addr:* tags. Location is the centroid for ways.
type AddressPoint struct {
	gazetteer.Entity
	Location orb.Point
}

func NewAddressPoint(id string, tags map[string]string, location orb.Point) AddressPoint {
	return AddressPoint{
		Entity:   gazetteer.NewEntity(id, tags),
		Location: location,
	}
}

// Street is a named highway way.
type Street struct {
	gazetteer.Entity
	Line orb.LineString
}

func NewStreet(id string, tags map[string]string, line orb.LineString) Street {
	return Street{
		Entity: gazetteer.NewEntity(id, tags),
		Line:   line,
	}
}

// Boundary is an administrative boundary or a place area with a known level.
type Boundary struct {
	gazetteer.Entity
	Level   int
	Polygon orb.MultiPolygon
	Bound   orb.Bound
	Area    float64 // planar, square degrees. only used for ordering
}

func NewBoundary(id string, tags map[string]string, level int, polygon orb.MultiPolygon) Boundary {
	return Boundary{
		Entity:  gazetteer.NewEntity(id, tags),
		Level:   level,
		Polygon: polygon,
		Bound:   polygon.Bound(),
		Area:    polygonArea(polygon),
	}
}

// Extract is everything the gazetteer needs from an osm file.
type Extract struct {
	AddressPoints []AddressPoint
	Streets       []Street
	Boundaries    []Boundary
}
