// Package langs holds the static supported-language table. The entries are
// configuration data shared by the translation prompts, the locale
// middleware and the voice capture adapter.
package langs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language describes one supported translation target.
type Language struct {
	// Code is the stable identifier clients send as targetLanguage. It
	// doubles as the human-readable label in prompts.
	Code string `json:"code"`
	// Label is the display name shown in pickers.
	Label string `json:"label"`
	// SpeechTag is the BCP 47 locale handed to speech recognition, empty
	// when recognition support is unreliable for the language.
	SpeechTag string `json:"speech_tag,omitempty"`
	// RTL marks right-to-left scripts.
	RTL bool `json:"rtl,omitempty"`
}

// DefaultNativeLanguage is used when a request carries no target language
// and no locale hint resolves to anything better.
const DefaultNativeLanguage = "Filipino/Tagalog"

// Supported is the full table, ordered the way clients present it.
var Supported = []Language{
	{Code: "Filipino/Tagalog", Label: "Filipino/Tagalog", SpeechTag: "fil-PH"},
	{Code: "Spanish", Label: "Spanish", SpeechTag: "es-ES"},
	{Code: "French", Label: "French", SpeechTag: "fr-FR"},
	{Code: "German", Label: "German", SpeechTag: "de-DE"},
	{Code: "Italian", Label: "Italian", SpeechTag: "it-IT"},
	{Code: "Portuguese", Label: "Portuguese", SpeechTag: "pt-PT"},
	{Code: "Russian", Label: "Russian", SpeechTag: "ru-RU"},
	{Code: "Chinese", Label: "Chinese (Simplified)", SpeechTag: "zh-CN"},
	{Code: "Japanese", Label: "Japanese", SpeechTag: "ja-JP"},
	{Code: "Korean", Label: "Korean", SpeechTag: "ko-KR"},
	{Code: "Arabic", Label: "Arabic", SpeechTag: "ar-SA", RTL: true},
	{Code: "Hindi", Label: "Hindi", SpeechTag: "hi-IN"},
	{Code: "Turkish", Label: "Turkish", SpeechTag: "tr-TR"},
	{Code: "Polish", Label: "Polish", SpeechTag: "pl-PL"},
	{Code: "Dutch", Label: "Dutch", SpeechTag: "nl-NL"},
	{Code: "Swedish", Label: "Swedish", SpeechTag: "sv-SE"},
	{Code: "Danish", Label: "Danish", SpeechTag: "da-DK"},
	{Code: "Norwegian", Label: "Norwegian", SpeechTag: "nb-NO"},
	{Code: "Finnish", Label: "Finnish", SpeechTag: "fi-FI"},
	{Code: "Greek", Label: "Greek", SpeechTag: "el-GR"},
	{Code: "Hebrew", Label: "Hebrew", SpeechTag: "he-IL", RTL: true},
	{Code: "Thai", Label: "Thai", SpeechTag: "th-TH"},
	{Code: "Vietnamese", Label: "Vietnamese", SpeechTag: "vi-VN"},
	{Code: "Indonesian", Label: "Indonesian", SpeechTag: "id-ID"},
	{Code: "Malay", Label: "Malay", SpeechTag: "ms-MY"},
	{Code: "Ukrainian", Label: "Ukrainian", SpeechTag: "uk-UA"},
	{Code: "Czech", Label: "Czech", SpeechTag: "cs-CZ"},
	{Code: "Romanian", Label: "Romanian", SpeechTag: "ro-RO"},
	{Code: "Hungarian", Label: "Hungarian", SpeechTag: "hu-HU"},
	{Code: "Bulgarian", Label: "Bulgarian", SpeechTag: "bg-BG"},
	{Code: "Croatian", Label: "Croatian", SpeechTag: "hr-HR"},
	{Code: "Slovak", Label: "Slovak", SpeechTag: "sk-SK"},
	{Code: "Slovenian", Label: "Slovenian", SpeechTag: "sl-SI"},
	{Code: "Lithuanian", Label: "Lithuanian", SpeechTag: "lt-LT"},
	{Code: "Latvian", Label: "Latvian", SpeechTag: "lv-LV"},
	{Code: "Estonian", Label: "Estonian", SpeechTag: "et-EE"},
	{Code: "Persian", Label: "Persian/Farsi", SpeechTag: "fa-IR", RTL: true},
	{Code: "Urdu", Label: "Urdu", SpeechTag: "ur-PK", RTL: true},
	{Code: "Bengali", Label: "Bengali", SpeechTag: "bn-BD"},
	{Code: "Tamil", Label: "Tamil", SpeechTag: "ta-IN"},
	{Code: "Telugu", Label: "Telugu", SpeechTag: "te-IN"},
	{Code: "Marathi", Label: "Marathi", SpeechTag: "mr-IN"},
	{Code: "Gujarati", Label: "Gujarati", SpeechTag: "gu-IN"},
	{Code: "Kannada", Label: "Kannada", SpeechTag: "kn-IN"},
	{Code: "Swahili", Label: "Swahili", SpeechTag: "sw-KE"},
	{Code: "Afrikaans", Label: "Afrikaans", SpeechTag: "af-ZA"},
	{Code: "Albanian", Label: "Albanian", SpeechTag: "sq-AL"},
	{Code: "Armenian", Label: "Armenian"},
	{Code: "Azerbaijani", Label: "Azerbaijani", SpeechTag: "az-AZ"},
	{Code: "Basque", Label: "Basque", SpeechTag: "eu-ES"},
	{Code: "Belarusian", Label: "Belarusian"},
	{Code: "Bosnian", Label: "Bosnian"},
	{Code: "Catalan", Label: "Catalan", SpeechTag: "ca-ES"},
	{Code: "Georgian", Label: "Georgian", SpeechTag: "ka-GE"},
	{Code: "Icelandic", Label: "Icelandic", SpeechTag: "is-IS"},
	{Code: "Irish", Label: "Irish"},
	{Code: "Kazakh", Label: "Kazakh"},
	{Code: "Macedonian", Label: "Macedonian"},
	{Code: "Maltese", Label: "Maltese"},
	{Code: "Mongolian", Label: "Mongolian"},
	{Code: "Serbian", Label: "Serbian", SpeechTag: "sr-RS"},
	{Code: "Welsh", Label: "Welsh"},
}

var byKey = func() map[string]Language {
	m := make(map[string]Language, len(Supported)*2)
	for _, l := range Supported {
		m[lookupKey(l.Code)] = l
		m[lookupKey(l.Label)] = l
	}
	return m
}()

func lookupKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup resolves a language by code or label, tolerating case differences.
func Lookup(name string) (Language, bool) {
	l, ok := byKey[lookupKey(name)]
	return l, ok
}

// Canonical returns the table's code for a code-or-label input. Unknown
// inputs are returned title-cased so prompts still read naturally.
func Canonical(name string) string {
	if l, ok := Lookup(name); ok {
		return l.Code
	}
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// IsRTL reports whether a language uses a right-to-left script.
func IsRTL(name string) bool {
	l, ok := Lookup(name)
	return ok && l.RTL
}

// SpeechCandidates returns the round-robin locale list for voice capture.
// The native language's tag is tried first when it has one; English is
// always in the rotation since mixed-language dictation is common.
func SpeechCandidates(nativeLanguage string) []string {
	base := []string{"en-US", "es-ES", "fil-PH", "zh-CN", "hi-IN", "ar-SA"}
	l, ok := Lookup(nativeLanguage)
	if !ok || l.SpeechTag == "" {
		return base
	}
	out := []string{l.SpeechTag}
	for _, tag := range base {
		if tag != l.SpeechTag {
			out = append(out, tag)
		}
	}
	return out
}

// ForCountry maps an ISO country code to a likely native language. Used as
// a locale hint only, never to restrict anything.
func ForCountry(country string) string {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "PH":
		return "Filipino/Tagalog"
	case "ES", "MX", "AR", "CO", "CL", "PE", "VE":
		return "Spanish"
	case "FR":
		return "French"
	case "DE", "AT":
		return "German"
	case "IT":
		return "Italian"
	case "PT", "BR":
		return "Portuguese"
	case "RU":
		return "Russian"
	case "CN", "TW", "HK":
		return "Chinese"
	case "JP":
		return "Japanese"
	case "KR":
		return "Korean"
	case "SA", "AE", "EG":
		return "Arabic"
	case "IN":
		return "Hindi"
	case "TR":
		return "Turkish"
	case "VN":
		return "Vietnamese"
	case "TH":
		return "Thai"
	case "ID":
		return "Indonesian"
	case "MY":
		return "Malay"
	case "UA":
		return "Ukrainian"
	case "PL":
		return "Polish"
	case "NL":
		return "Dutch"
	default:
		return ""
	}
}
