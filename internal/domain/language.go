package domain

import "fmt"

// Language selects the localization of names, tags and keywords returned by the catalog.
type Language string

func (l Language) String() string {
	return string(l)
}

const (
	LanguageFrench              Language = "fr"
	LanguageEnglishUS           Language = "en_us"
	LanguageEnglishUK           Language = "en_uk"
	LanguageGerman              Language = "de"
	LanguageSpanish             Language = "es"
	LanguageItalian             Language = "it"
	LanguagePortuguesePortugal  Language = "pt_pt"
	LanguagePortugueseBrazilian Language = "pt_br"
	LanguageJapanese            Language = "jp"
	LanguagePolish              Language = "pl"

	DefaultLanguage = LanguageEnglishUS
)

var languageIDs = map[Language]int{
	LanguageFrench:              1,
	LanguageEnglishUS:           2,
	LanguageEnglishUK:           3,
	LanguageGerman:              4,
	LanguageSpanish:             5,
	LanguageItalian:             6,
	LanguagePortuguesePortugal:  7,
	LanguagePortugueseBrazilian: 8,
	LanguageJapanese:            9,
	LanguagePolish:              11,
}

// ID returns the catalog id of the language, or 0 when the language is unknown.
func (l Language) ID() int {
	return languageIDs[l]
}

// ParseLanguage resolves a language code such as "de" or "en_us".
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if _, ok := languageIDs[l]; !ok {
		return "", fmt.Errorf("%w: code %q", ErrLanguageNotDefined, code)
	}
	return l, nil
}

// LanguageFromID resolves a catalog language id.
func LanguageFromID(id int) (Language, error) {
	for l, lid := range languageIDs {
		if lid == id {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: id %d", ErrLanguageNotDefined, id)
}
