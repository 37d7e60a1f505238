package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNameTags(t *testing.T) {
	tags := map[string]string{
		"name":           "Jalan Malioboro",
		"name:en":        "Malioboro Street",
		"alt_name":       "Malioboro",
		"old_name:nl":    "Malioborostraat",
		"name:prefix":    "Jalan",
		"name:etymology": "garland",
		"official_name":  "  ",
		"highway":        "primary",
		"namespace":      "x",
	}

	names := FilterNameTags.ExtractNames(tags)
	assert.Equal(t, map[string]string{
		"name":        "Jalan Malioboro",
		"name:en":     "Malioboro Street",
		"alt_name":    "Malioboro",
		"old_name:nl": "Malioborostraat",
	}, names)
}

func TestNameExtractorFunc(t *testing.T) {
	extractor := NameExtractorFunc(func(tags map[string]string) map[string]string {
		return map[string]string{"name": tags["ref"]}
	})
	assert.Equal(t, "A1", extractor.ExtractNames(map[string]string{"ref": "A1"})["name"])
}
