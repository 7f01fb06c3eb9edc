package translate

import (
	"fmt"

	"aipolyglot/internal/langs"
)

// The assistant persona is part of the product voice and appears in every
// system prompt.
const assistantName = "AiPolyglot"

const simpleSystemPrompt = "You are " + assistantName + ", a helpful translation assistant. " +
	"Provide accurate, natural-sounding English translations. " +
	"Only return the translated text without any additional explanations or notes."

func simpleUserPrompt(text string) string {
	return fmt.Sprintf("Translate the following text to English: %q", text)
}

func autoSystemPrompt(nativeLanguage string) string {
	target := nativeLanguage
	if target == "" {
		target = "the user's native language"
	}
	return fmt.Sprintf(`You are %s, a professional bidirectional translation assistant.

Your task is to:
1. Detect if the input text is in English or another language
2. If the text is in English, translate it to %s
3. If the text is NOT in English, translate it to English
4. Provide highly accurate, natural-sounding translations that preserve meaning, tone, and cultural context
5. Pay special attention to idiomatic expressions, cultural nuances, and proper names

Return ONLY the translated text without any additional explanations, notes, or language labels.`, assistantName, target)
}

func autoUserPrompt(text, nativeLanguage string) string {
	target := nativeLanguage
	if target == "" {
		target = "native language"
	}
	return fmt.Sprintf("Translate this text appropriately (English to %s OR native language to English): %q", target, text)
}

func manualSystemPrompt(fromLang, toLang string) string {
	return fmt.Sprintf("You are %s, a professional translation assistant. "+
		"Provide highly accurate, natural-sounding translations from %s to %s that preserve the original meaning, tone, and cultural context. "+
		"Pay special attention to idiomatic expressions, cultural nuances, and proper names. "+
		"Only return the translated text without any additional explanations or notes.", assistantName, fromLang, toLang)
}

func manualUserPrompt(text, fromLang, toLang string) string {
	return fmt.Sprintf("Translate the following text from %s to %s: %q", fromLang, toLang, text)
}

const detectionSystemPrompt = "You are a language detection assistant. " +
	"Determine if the given text is primarily in English or another language. " +
	"Respond with only 'english' or 'other'."

func detectionUserPrompt(text string) string {
	return fmt.Sprintf("Detect the primary language of this text: %q", text)
}

// manualLabel expands raw client input into a prompt-friendly label.
func manualLabel(name string) string {
	if name == "" || name == "en" {
		return "English"
	}
	return langs.Canonical(name)
}
