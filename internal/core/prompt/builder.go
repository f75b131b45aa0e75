package prompt

// Prompt is the message pair sent for one extraction.
type Prompt struct {
	Language Language
	System   string
	User     string
}

// SystemPrompt returns the instruction template for lang. Anything other
// than Chinese gets the English template.
func SystemPrompt(lang Language) string {
	if lang == Chinese {
		return chineseSystemPrompt
	}
	return englishSystemPrompt
}

// UserPrompt embeds text verbatim after a fixed request line.
func UserPrompt(text string) string {
	return userPromptPrefix + text
}

// Build detects the language of text and assembles both messages.
func Build(text string) Prompt {
	lang := DetectLanguage(text)
	return Prompt{
		Language: lang,
		System:   SystemPrompt(lang),
		User:     UserPrompt(text),
	}
}
