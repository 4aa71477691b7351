package botc

// knownLocales lists every locale a script translation can be published
// in. Insertion order is kept for stable enumeration only; it carries no
// ranking.
var knownLocales = []string{
	"en_GB",
	"zh_CN",
	"zh_TW",
	"de_DE",
	"es_ES",
	"fr_FR",
	"it_IT",
	"ja_JP",
	"ko_KR",
	"nl_NL",
	"pl_PL",
	"pt_BR",
	"ru_RU",
	"uk_UA",
	"vi_VN",
}

// KnownLocales returns the supported locale codes in their fixed order.
// The returned slice is a copy and may be modified freely by the caller.
func KnownLocales() []string {
	locales := make([]string, len(knownLocales))
	copy(locales, knownLocales)
	return locales
}
