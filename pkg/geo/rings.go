package geo

import "github.com/paulmach/orb"

// joinRings chains member ways of a multipolygon relation into closed rings. ways are joined
// end to end, reversed when needed. chains that never close are dropped.
func joinRings(segments [][]orb.Point) []orb.Ring {
	left := make([][]orb.Point, 0, len(segments))
	for _, s := range segments {
		if len(s) >= 2 {
			left = append(left, s)
		}
	}

	rings := []orb.Ring{}
	for len(left) > 0 {
		current := append([]orb.Point{}, left[0]...)
		left = left[1:]

		for !isClosedRing(current) {
			idx, reversed := findNextSegment(current[len(current)-1], left)
			if idx < 0 {
				break
			}
			next := left[idx]
			left = append(left[:idx], left[idx+1:]...)
			if reversed {
				next = reversePoints(next)
			}
			current = append(current, next[1:]...)
		}

		if isClosedRing(current) {
			rings = append(rings, orb.Ring(current))
		}
	}
	return rings
}

func isClosedRing(points []orb.Point) bool {
	return len(points) >= 4 && points[0] == points[len(points)-1]
}

func findNextSegment(end orb.Point, segments [][]orb.Point) (int, bool) {
	for i, s := range segments {
		if s[0] == end {
			return i, false
		}
		if s[len(s)-1] == end {
			return i, true
		}
	}
	return -1, false
}

func reversePoints(points []orb.Point) []orb.Point {
	reversed := make([]orb.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// buildMultiPolygon puts every inner ring into the first outer ring containing it.
func buildMultiPolygon(outer, inner []orb.Ring) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(outer))
	for _, ring := range outer {
		mp = append(mp, orb.Polygon{ring})
	}

	for _, hole := range inner {
		for i := range mp {
			if IsPointInRing(hole[0], mp[i][0]) {
				mp[i] = append(mp[i], hole)
				break
			}
		}
	}
	return mp
}
