package geo

import (
	"context"
	"fmt"
	"os"

	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

type osmRelation struct {
	id    osm.RelationID
	tags  map[string]string
	level int
	outer []osm.WayID
	inner []osm.WayID
}

type osmWay struct {
	id      osm.WayID
	tags    map[string]string
	nodeIDs []osm.NodeID
}

// ParseOSM reads address points, streets and boundaries from an osm pbf file.
// the file is scanned three times: relations, ways, then nodes, so only the ways and nodes
// actually referenced are kept in memory.
func ParseOSM(ctx context.Context, mapfile string) (*Extract, error) {
	bar := progressbar.NewOptions(4,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Parsing osm objects..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	relations, memberWays, err := scanRelations(ctx, mapfile)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	wayNodes, streets, boundaryWays, addressWays, neededNodes, err := scanWays(ctx, mapfile, memberWays)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	ctr, addressNodes, err := scanNodes(ctx, mapfile, neededNodes)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	extract := &Extract{
		AddressPoints: addressNodes,
	}

	for _, w := range addressWays {
		points := wayPoints(w.nodeIDs, ctr)
		if len(points) == 0 {
			continue
		}
		extract.AddressPoints = append(extract.AddressPoints,
			NewAddressPoint(w.id.FeatureID().String(), w.tags, Centroid(points)))
	}

	for _, w := range streets {
		line := orb.LineString(wayPoints(w.nodeIDs, ctr))
		if len(line) < 2 {
			continue
		}
		extract.Streets = append(extract.Streets, NewStreet(w.id.FeatureID().String(), w.tags, line))
	}

	for _, w := range boundaryWays {
		ring := orb.Ring(wayPoints(w.nodeIDs, ctr))
		if len(ring) < 4 || !ring.Closed() {
			continue
		}
		extract.Boundaries = append(extract.Boundaries, NewBoundary(w.id.FeatureID().String(), w.tags,
			gazetteer.LevelOfBoundary(w.tags), orb.MultiPolygon{orb.Polygon{ring}}))
	}

	for _, rel := range relations {
		outer := make([][]orb.Point, 0, len(rel.outer))
		for _, wayID := range rel.outer {
			outer = append(outer, wayPoints(wayNodes[wayID], ctr))
		}
		inner := make([][]orb.Point, 0, len(rel.inner))
		for _, wayID := range rel.inner {
			inner = append(inner, wayPoints(wayNodes[wayID], ctr))
		}

		polygon := buildMultiPolygon(joinRings(outer), joinRings(inner))
		if len(polygon) == 0 {
			continue
		}
		extract.Boundaries = append(extract.Boundaries, NewBoundary(rel.id.FeatureID().String(), rel.tags,
			rel.level, polygon))
	}
	bar.Add(1)

	return extract, nil
}

func newScanner(ctx context.Context, f *os.File) *osmpbf.Scanner {
	return osmpbf.New(ctx, f, 1)
}

func scanRelations(ctx context.Context, mapfile string) ([]osmRelation, map[osm.WayID]bool, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := newScanner(ctx, f)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipWays = true

	relations := []osmRelation{}
	memberWays := make(map[osm.WayID]bool)
	for scanner.Scan() {
		rel, ok := scanner.Object().(*osm.Relation)
		if !ok {
			continue
		}

		tags := rel.Tags.Map()
		if !isBoundaryCandidate(tags) {
			continue
		}
		level := gazetteer.LevelOfBoundary(tags)
		if level == gazetteer.NoLevel {
			continue
		}

		r := osmRelation{id: rel.ID, tags: tags, level: level}
		for _, m := range rel.Members {
			if m.Type != osm.TypeWay {
				continue
			}
			switch m.Role {
			case "outer", "":
				r.outer = append(r.outer, osm.WayID(m.Ref))
			case "inner":
				r.inner = append(r.inner, osm.WayID(m.Ref))
			default:
				continue
			}
			memberWays[osm.WayID(m.Ref)] = true
		}
		relations = append(relations, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan relations: %w", err)
	}
	return relations, memberWays, nil
}

func scanWays(ctx context.Context, mapfile string, memberWays map[osm.WayID]bool) (
	wayNodes map[osm.WayID][]osm.NodeID, streets, boundaryWays, addressWays []osmWay,
	neededNodes map[osm.NodeID]bool, err error) {

	f, err := os.Open(mapfile)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := newScanner(ctx, f)
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	wayNodes = make(map[osm.WayID][]osm.NodeID)
	neededNodes = make(map[osm.NodeID]bool)

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}

		nodeIDs := make([]osm.NodeID, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			nodeIDs = append(nodeIDs, n.ID)
		}

		tags := way.Tags.Map()
		needed := false

		if memberWays[way.ID] {
			wayNodes[way.ID] = nodeIDs
			needed = true
		}

		if streetHighways[tags["highway"]] && len(gazetteer.FilterNameTags.ExtractNames(tags)) > 0 {
			streets = append(streets, osmWay{id: way.ID, tags: tags, nodeIDs: nodeIDs})
			needed = true
		}

		if isClosed(nodeIDs) && isBoundaryCandidate(tags) && gazetteer.LevelOfBoundary(tags) != gazetteer.NoLevel {
			boundaryWays = append(boundaryWays, osmWay{id: way.ID, tags: tags, nodeIDs: nodeIDs})
			needed = true
		}

		if isAddressPoint(tags) {
			addressWays = append(addressWays, osmWay{id: way.ID, tags: tags, nodeIDs: nodeIDs})
			needed = true
		}

		if needed {
			for _, id := range nodeIDs {
				neededNodes[id] = true
			}
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("scan ways: %w", scanErr)
	}
	return
}

func scanNodes(ctx context.Context, mapfile string, neededNodes map[osm.NodeID]bool) (NodeMapContainer, []AddressPoint, error) {
	ctr := NewNodeMapContainer()

	f, err := os.Open(mapfile)
	if err != nil {
		return ctr, nil, err
	}
	defer f.Close()

	scanner := newScanner(ctx, f)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	addressPoints := []AddressPoint{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		if neededNodes[node.ID] {
			ctr.SetNode(node.ID, node.Point())
		}

		if len(node.Tags) == 0 {
			continue
		}
		tags := node.Tags.Map()
		if isAddressPoint(tags) {
			addressPoints = append(addressPoints, NewAddressPoint(node.FeatureID().String(), tags, node.Point()))
		}
	}

	if err := scanner.Err(); err != nil {
		return ctr, nil, fmt.Errorf("scan nodes: %w", err)
	}
	return ctr, addressPoints, nil
}

func isAddressPoint(tags map[string]string) bool {
	for _, k := range addressKeys {
		if _, ok := tags[k]; ok {
			return true
		}
	}
	return false
}

func isBoundaryCandidate(tags map[string]string) bool {
	if _, ok := tags["place"]; ok {
		return true
	}
	return tags["boundary"] == "administrative"
}

func wayPoints(nodeIDs []osm.NodeID, ctr NodeMapContainer) []orb.Point {
	points := make([]orb.Point, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		p, ok := ctr.GetNode(id)
		if !ok {
			// way cut at the extract border
			continue
		}
		points = append(points, p)
	}
	return points
}

func isClosed(nodeIDs []osm.NodeID) bool {
	return len(nodeIDs) >= 4 && nodeIDs[0] == nodeIDs[len(nodeIDs)-1]
}
