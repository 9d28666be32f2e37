package content

// Language selects one of the two bundles.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// DefaultLanguage is used when no preference is stored or the stored value is unknown.
const DefaultLanguage = English

// Languages lists every supported language in display order.
var Languages = []Language{English, Vietnamese}

// ParseLanguage maps any value other than "vi" to English.
func ParseLanguage(s string) Language {
	if Language(s) == Vietnamese {
		return Vietnamese
	}
	return English
}

// Other returns the language the toggle switches to.
func (l Language) Other() Language {
	if l == Vietnamese {
		return English
	}
	return Vietnamese
}

func (l Language) String() string {
	return string(l)
}
