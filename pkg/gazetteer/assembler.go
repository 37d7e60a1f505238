package gazetteer

import (
	"strings"

	"go.uber.org/zap"
)

// Assembler builds the address hierarchies of address points. it holds no mutable state,
// a single Assembler can be shared by any number of goroutines.
type Assembler struct {
	log       *zap.Logger
	names     NameExtractor
	formatter TextFormatter
	lang      string
}

// NewAssembler. nil names uses FilterNameTags, nil formatter uses DefaultFormatter.
func NewAssembler(log *zap.Logger, names NameExtractor, formatter TextFormatter) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	if names == nil {
		names = FilterNameTags
	}
	if formatter == nil {
		formatter = DefaultFormatter{}
	}
	return &Assembler{
		log:       log,
		names:     names,
		formatter: formatter,
	}
}

// ForLang returns a copy of the assembler rendering text for lang.
func (a *Assembler) ForLang(lang string) *Assembler {
	cp := *a
	cp.lang = lang
	return &cp
}

func (a *Assembler) Lang() string {
	return a.lang
}

// Assemble returns one record per addressing scheme of point, followed by the raw addr:full
// record if the point has one. boundaries must already contain the point, in precedence order.
// nearbyStreets may be nil.
func (a *Assembler) Assemble(point Entity, boundaries []Entity, nearbyStreets []Entity) []Record {
	schemes, ambiguous := DetectSchemes(point.Tags)
	if ambiguous {
		a.log.Warn("ambivalent address, dropped street of secondary house number",
			zap.String("id", point.ID), zap.Any("tags", point.Tags))
	}

	records := make([]Record, 0, len(schemes)+1)
	for _, scheme := range schemes {
		records = append(records, a.assembleScheme(point.ID, scheme, boundaries, nearbyStreets))
	}

	// the scheme of this record is the address text itself, kept for compatibility with
	// existing dumps.
	if full := point.Tags[ADDR_FULL]; strings.TrimSpace(full) != "" {
		records = append(records, NewRecord(full, true, nil, full))
	}

	return records
}

func (a *Assembler) assembleScheme(pointID string, scheme Scheme, boundaries []Entity, nearbyStreets []Entity) Record {
	parts := make([]Component, 0, 4+len(boundaries))
	parts = append(parts, houseNumberComponent(pointID, scheme.Tags))

	if street, ok := streetComponent(scheme.Tags, nearbyStreets, a.names); ok {
		parts = append(parts, street)
	}

	quarterIdx, cityIdx := -1, -1
	if quarter, ok := inlineComponent(scheme.Tags, ADDR_QUARTER, LEVEL_QUARTER); ok {
		quarterIdx = len(parts)
		parts = append(parts, quarter)
	}
	if city, ok := inlineComponent(scheme.Tags, ADDR_CITY, LEVEL_CITY); ok {
		cityIdx = len(parts)
		parts = append(parts, city)
	}

	parts = mergeBoundaries(parts, quarterIdx, cityIdx, boundaries, a.names)
	sortComponents(parts)

	text, ok := a.formatter.JoinNames(parts, scheme.Tags, a.lang)
	return NewRecord(text, ok, parts, scheme.ID)
}

// AssembleBoundaries builds the hierarchy of boundaries alone (no house number, no street),
// used to label a boundary from its own ancestor boundaries.
func (a *Assembler) AssembleBoundaries(boundaries []Entity) Record {
	parts := boundaryComponents(boundaries, a.names)
	sortComponents(parts)

	text, ok := a.formatter.JoinBoundariesNames(parts, a.lang)
	return NewRecord(text, ok, parts, "")
}
