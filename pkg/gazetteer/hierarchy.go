package gazetteer

import (
	"sort"
	"strings"
)

const NAMES_SEPARATOR = ", "

// Record is a full address: the rendered text, the sorted hierarchy and the scheme it was
// built from. Text is nil when no part has a name.
type Record struct {
	Text   *string     `json:"text" msgpack:"text"`
	Parts  []Component `json:"parts,omitempty" msgpack:"parts,omitempty"`
	Scheme string      `json:"addr-scheme,omitempty" msgpack:"addr-scheme,omitempty"`
}

func NewRecord(text string, hasText bool, parts []Component, scheme string) Record {
	rec := Record{
		Parts:  parts,
		Scheme: scheme,
	}
	if hasText {
		rec.Text = &text
	}
	return rec
}

// TextOrEmpty returns the rendered text, "" for records without one.
func (r Record) TextOrEmpty() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

// sortComponents orders by level, equal levels keep the order they were added in.
func sortComponents(parts []Component) {
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].Level < parts[j].Level
	})
}

// joinNames joins the non empty part names. false when nothing was joined.
func joinNames(parts []Component) (string, bool) {
	var sb strings.Builder
	for _, part := range parts {
		if part.Name == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(NAMES_SEPARATOR)
		}
		sb.WriteString(part.Name)
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}
