// Package i18n holds the bilingual content table of the site and the
// language rules used to render it.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Bengali Language = "bn"

	// Default is the language a visitor sees before choosing one.
	Default = English
)

// Languages lists the bundled languages in display order.
var Languages = []Language{English, Bengali}

var tags = map[Language]language.Tag{
	English: language.MustParse("en-US"),
	Bengali: language.MustParse("bn-BD-u-nu-beng"),
}

// Parse reports whether value names a bundled language.
func Parse(value string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(value))) {
	case English:
		return English, true
	case Bengali:
		return Bengali, true
	}
	return "", false
}

// FromQuery resolves the lang query parameter. Anything unknown is Default.
func FromQuery(value string) Language {
	if lang, ok := Parse(value); ok {
		return lang
	}
	return Default
}

// Toggle switches between the two bundled languages.
func (l Language) Toggle() Language {
	if l == Bengali {
		return English
	}
	return Bengali
}

func (l Language) Tag() language.Tag {
	if tag, ok := tags[l]; ok {
		return tag
	}
	return tags[Default]
}

func (l Language) String() string {
	return string(l)
}
