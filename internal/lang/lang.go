// Package lang holds the output languages and every user-facing string.
// All rendering and error text goes through a Catalog so that the two
// supported languages stay in sync.
package lang

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language identifies one of the supported output languages.
type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// supported is ordered to match the matcher below; English first so it
// wins as the fallback.
var supported = []Language{English, German}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
})

// Parse maps a BCP 47 tag onto a supported language. Regional variants
// such as "de-AT" or "en_US" collapse onto their base language; anything
// else is rejected.
func Parse(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Default, fmt.Errorf("unsupported language %q", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, fmt.Errorf("unsupported language %q", s)
	}
	return supported[idx], nil
}

func (l Language) String() string {
	return string(l)
}
