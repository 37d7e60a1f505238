package gazetteer

import "strings"

// PRIMARY_NAME_KEY is the designated canonical name key of an extracted name set.
const PRIMARY_NAME_KEY = "name"

// NameExtractor returns the canonical name plus every alternate name of an entity as
// name-tag -> value. Implementations must be deterministic and safe for concurrent use.
type NameExtractor interface {
	ExtractNames(tags map[string]string) map[string]string
}

// NameExtractorFunc adapts a plain function to NameExtractor.
type NameExtractorFunc func(tags map[string]string) map[string]string

func (f NameExtractorFunc) ExtractNames(tags map[string]string) map[string]string {
	return f(tags)
}

// name keys that can carry a language suffix, e.g. alt_name:de.
var nameTagPrefixes = []string{
	"name",
	"alt_name",
	"old_name",
	"official_name",
	"short_name",
	"int_name",
	"loc_name",
	"nat_name",
	"reg_name",
}

// suffixes of name:* keys that are not names.
var notNameSuffixes = map[string]bool{
	"prefix":        true,
	"suffix":        true,
	"etymology":     true,
	"pronunciation": true,
	"signed":        true,
	"left":          true,
	"right":         true,
}

// FilterNameTags is the default NameExtractor. It keeps the name tags with a non blank value.
var FilterNameTags NameExtractor = NameExtractorFunc(filterNameTags)

func filterNameTags(tags map[string]string) map[string]string {
	names := make(map[string]string)
	for k, v := range tags {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if isNameKey(k) {
			names[k] = v
		}
	}
	return names
}

func isNameKey(key string) bool {
	for _, prefix := range nameTagPrefixes {
		if key == prefix {
			return true
		}
		if !strings.HasPrefix(key, prefix+":") {
			continue
		}
		suffix := key[len(prefix)+1:]
		if suffix == "" {
			return false
		}
		if i := strings.IndexByte(suffix, ':'); i >= 0 {
			// name:de:pronunciation
			suffix = suffix[i+1:]
		}
		return !notNameSuffixes[suffix]
	}
	return false
}

func containsValue(names map[string]string, value string) bool {
	for _, v := range names {
		if v == value {
			return true
		}
	}
	return false
}
