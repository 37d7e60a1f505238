package gazetteer

// Component is one level of an address hierarchy.
type Component struct {
	Level int               `json:"lvl" msgpack:"lvl"`
	Name  string            `json:"name" msgpack:"name"`
	Names map[string]string `json:"names,omitempty" msgpack:"names,omitempty"`
	Link  string            `json:"lnk,omitempty" msgpack:"lnk,omitempty"` // id of the source entity, not owned
}

func NewComponent(level int, name string, names map[string]string, link string) Component {
	return Component{
		Level: level,
		Name:  name,
		Names: names,
		Link:  link,
	}
}

// houseNumberComponent is always built, the house number itself may be empty.
func houseNumberComponent(pointID string, tags map[string]string) Component {
	names := make(map[string]string)
	if v, ok := tags[ADDR_HOUSENAME]; ok {
		names[ADDR_HOUSENAME] = v
	}
	if v, ok := tags[ADDR_HN_ORIG]; ok {
		names[ADDR_HN_ORIG] = v
	}

	return NewComponent(LEVEL_HOUSE_NUMBER, tags[ADDR_HOUSENUMBER], names, pointID)
}

// streetComponent resolves addr:street against the nearby streets. the first street having a
// name equal to addr:street is linked. nearbyStreets may be nil.
func streetComponent(tags map[string]string, nearbyStreets []Entity, extractor NameExtractor) (Component, bool) {
	street, ok := tags[ADDR_STREET]
	if !ok {
		return Component{}, false
	}

	for _, candidate := range nearbyStreets {
		names := extractor.ExtractNames(candidate.Tags)
		if containsValue(names, street) {
			return NewComponent(LEVEL_STREET, street, names, candidate.ID), true
		}
	}

	return NewComponent(LEVEL_STREET, street, nil, ""), true
}

// inlineComponent builds the quarter/city level from addr:quarter or addr:city of the point.
// link and names are filled later by mergeBoundaries.
func inlineComponent(tags map[string]string, key string, level int) (Component, bool) {
	v, ok := tags[key]
	if !ok {
		return Component{}, false
	}
	return NewComponent(level, v, nil, ""), true
}
