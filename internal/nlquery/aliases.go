package nlquery

import "strings"

// languageAliases maps lowercase colloquial names to the canonical display
// name used in the dataset's languages_spoken column. Kept as an ordered
// slice: the parser's first-substring-match rule depends on a fixed
// iteration order.
var languageAliases = []struct {
	Alias     string
	Canonical string
}{
	{"english", "English"},
	{"spanish", "Spanish"},
	{"spanish/latin", "Spanish"},
	{"chinese", "Chinese"},
	{"mandarin", "Chinese"},
	{"cantonese", "Chinese"},
	{"korean", "Korean"},
	{"vietnamese", "Vietnamese"},
	{"arabic", "Arabic"},
	{"hindi", "Hindi"},
	{"gujarati", "Gujarati"},
	{"french", "French"},
	{"amharic", "Amharic"},
	{"somali", "Somali"},
	{"haitian creole", "Haitian Creole"},
	{"creole", "Haitian Creole"},
	{"russian", "Russian"},
}

// CanonicalLanguage resolves a user-supplied language to its canonical
// display name. Unknown inputs pass through unchanged.
func CanonicalLanguage(lang string) string {
	key := strings.ToLower(strings.TrimSpace(lang))
	for _, a := range languageAliases {
		if a.Alias == key {
			return a.Canonical
		}
	}
	return lang
}
