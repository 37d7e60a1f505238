package gazetteer

import (
	"golang.org/x/text/language"
)

// TextFormatter renders the display text of sorted address parts. tags are the tags of the
// scheme the parts were built from.
type TextFormatter interface {
	JoinNames(parts []Component, tags map[string]string, lang string) (string, bool)
	JoinBoundariesNames(parts []Component, lang string) (string, bool)
}

// DefaultFormatter joins names with ", " and ignores the language.
type DefaultFormatter struct{}

func (DefaultFormatter) JoinNames(parts []Component, _ map[string]string, _ string) (string, bool) {
	return joinNames(parts)
}

func (DefaultFormatter) JoinBoundariesNames(parts []Component, _ string) (string, bool) {
	return joinNames(parts)
}

// locales that write addresses from the largest area down to the house number.
var bigEndianLocales = map[string]bool{
	"ja": true,
	"zh": true,
	"ko": true,
	"hu": true,
}

// LocaleFormatter prefers name:<lang> of each part (addr:street:<lang>/addr:city:<lang> of the
// point for inline parts) and reverses the order for big endian locales.
// Unparseable language codes fall back to DefaultFormatter.
type LocaleFormatter struct{}

func NewLocaleFormatter() *LocaleFormatter {
	return &LocaleFormatter{}
}

func (f *LocaleFormatter) JoinNames(parts []Component, tags map[string]string, lang string) (string, bool) {
	base, ok := baseLanguage(lang)
	if !ok {
		return joinNames(parts)
	}

	localized := make([]Component, len(parts))
	for i, part := range parts {
		localized[i] = part
		if name := localizedName(part, tags, base); name != "" {
			localized[i].Name = name
		}
	}

	return joinOrdered(localized, base)
}

func (f *LocaleFormatter) JoinBoundariesNames(parts []Component, lang string) (string, bool) {
	return f.JoinNames(parts, nil, lang)
}

func baseLanguage(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

func localizedName(part Component, tags map[string]string, base string) string {
	switch {
	case part.Level == LEVEL_HOUSE_NUMBER:
		return ""
	case part.Level == LEVEL_STREET && part.Link == "":
		return tags[ADDR_STREET+":"+base]
	case part.Level == LEVEL_CITY && part.Link == "":
		return tags[ADDR_CITY+":"+base]
	}
	return part.Names[PRIMARY_NAME_KEY+":"+base]
}

func joinOrdered(parts []Component, base string) (string, bool) {
	if !bigEndianLocales[base] {
		return joinNames(parts)
	}
	reversed := make([]Component, len(parts))
	for i, part := range parts {
		reversed[len(parts)-1-i] = part
	}
	return joinNames(reversed)
}
