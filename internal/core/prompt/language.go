package prompt

// Language selects the instruction template.
type Language string

const (
	Chinese Language = "chinese"
	English Language = "english"
)

// DetectLanguage compares CJK unified ideographs (U+4E00..U+9FFF) against
// ASCII letters. Chinese wins only with a strict majority; ties, mixed text
// and empty input fall back to English.
func DetectLanguage(text string) Language {
	var ideographs, latin int
	for _, r := range text {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
			ideographs++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	if ideographs > latin {
		return Chinese
	}
	return English
}
