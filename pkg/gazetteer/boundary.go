package gazetteer

// mergeBoundaries folds the boundary candidates into parts. a boundary on the level of an inline
// quarter or city (quarterIdx/cityIdx, -1 when absent) only adds its link and names to that part,
// the inline name stays. every other boundary with a level and a primary name is appended.
func mergeBoundaries(parts []Component, quarterIdx, cityIdx int, boundaries []Entity,
	extractor NameExtractor) []Component {

	for _, bndry := range boundaries {
		lvl := LevelOfBoundary(bndry.Tags)
		if lvl == NoLevel {
			continue
		}

		if quarterIdx >= 0 && lvl == LEVEL_QUARTER {
			parts[quarterIdx] = joinBoundary(parts[quarterIdx], bndry, extractor)
			continue
		}

		if cityIdx >= 0 && lvl == LEVEL_CITY {
			parts[cityIdx] = joinBoundary(parts[cityIdx], bndry, extractor)
			continue
		}

		part, ok := boundaryComponent(bndry, lvl, extractor)
		if !ok {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func joinBoundary(base Component, bndry Entity, extractor NameExtractor) Component {
	return NewComponent(base.Level, base.Name, extractor.ExtractNames(bndry.Tags), bndry.ID)
}

// boundaryComponent returns false for boundaries without a primary name.
func boundaryComponent(bndry Entity, lvl int, extractor NameExtractor) (Component, bool) {
	names := extractor.ExtractNames(bndry.Tags)
	name, ok := names[PRIMARY_NAME_KEY]
	if !ok {
		return Component{}, false
	}
	return NewComponent(lvl, name, names, bndry.ID), true
}

// boundaryComponents is the boundary only variant, used to label boundaries themselves.
func boundaryComponents(boundaries []Entity, extractor NameExtractor) []Component {
	parts := make([]Component, 0, len(boundaries))
	for _, bndry := range boundaries {
		lvl := LevelOfBoundary(bndry.Tags)
		if lvl == NoLevel {
			continue
		}
		part, ok := boundaryComponent(bndry, lvl, extractor)
		if !ok {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
