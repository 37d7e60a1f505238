package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNames(t *testing.T) {
	tests := []struct {
		name     string
		parts    []Component
		wantText string
		wantOK   bool
	}{
		{
			name: "comma join",
			parts: []Component{
				{Level: 10, Name: "12"},
				{Level: 20, Name: "Main St"},
				{Level: 70, Name: "Springfield"},
			},
			wantText: "12, Main St, Springfield",
			wantOK:   true,
		},
		{
			name: "empty names are skipped",
			parts: []Component{
				{Level: 10, Name: ""},
				{Level: 20, Name: "Main St"},
				{Level: 30, Name: ""},
			},
			wantText: "Main St",
			wantOK:   true,
		},
		{
			name:   "nothing to join",
			parts:  []Component{{Level: 10}},
			wantOK: false,
		},
		{
			name:   "no parts",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := joinNames(tt.parts)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestSortComponentsIsStable(t *testing.T) {
	parts := []Component{
		{Level: 130, Name: "Country"},
		{Level: 80, Name: "B"},
		{Level: 10, Name: "1"},
		{Level: 80, Name: "A"},
		{Level: 80, Name: "C"},
	}
	sortComponents(parts)

	names := []string{}
	for _, p := range parts {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"1", "B", "A", "C", "Country"}, names)
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("", false, nil, SCHEME_REGULAR)
	assert.Nil(t, rec.Text)
	assert.Equal(t, "", rec.TextOrEmpty())

	rec = NewRecord("1, A", true, nil, SCHEME_REGULAR)
	assert.Equal(t, "1, A", *rec.Text)
}
