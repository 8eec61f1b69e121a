package models

// Language selects one slot of a LocalizedText. Chinese is the primary
// authoring language of the site; English is the derived translation.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// Valid reports whether the language is one of the two supported slots.
func (l Language) Valid() bool {
	return l == LangZH || l == LangEN
}

// Other returns the sibling language slot.
func (l Language) Other() Language {
	if l == LangZH {
		return LangEN
	}
	return LangZH
}

// LocalizedText is the atomic bilingual string pair. After migration both
// slots are always present; a missing slot only ever exists in legacy
// persisted documents.
type LocalizedText struct {
	ZH string `json:"zh"`
	EN string `json:"en"`
}

// L is a shorthand constructor used heavily by the default content tables.
func L(zh, en string) LocalizedText {
	return LocalizedText{ZH: zh, EN: en}
}

// Value returns the slot for the given language.
func (t LocalizedText) Value(lang Language) string {
	if lang == LangEN {
		return t.EN
	}
	return t.ZH
}

// Set writes the slot for the given language, leaving the sibling untouched.
func (t *LocalizedText) Set(lang Language, s string) {
	if lang == LangEN {
		t.EN = s
		return
	}
	t.ZH = s
}
