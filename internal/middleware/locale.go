package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"aipolyglot/internal/langs"
)

type nativeLanguageContextKey struct{}

var NativeLanguageKey = nativeLanguageContextKey{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// NativeLanguage guesses the caller's likely native language so requests
// without an explicit targetLanguage still translate somewhere sensible.
// Order: X-Native-Language header, Accept-Language, GeoIP country, default.
func NativeLanguage(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := detectNativeLanguage(r, lookup)
			ctx := context.WithValue(r.Context(), NativeLanguageKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectNativeLanguage(r *http.Request, lookup CountryLookup) string {
	if v := strings.TrimSpace(r.Header.Get("X-Native-Language")); v != "" {
		if l, ok := langs.Lookup(v); ok {
			return l.Code
		}
	}
	if v := fromAcceptLanguage(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil {
				if v := langs.ForCountry(country); v != "" {
					return v
				}
			}
		}
	}
	return langs.DefaultNativeLanguage
}

// fromAcceptLanguage maps the first non-English Accept-Language entry to a
// supported language. English entries are skipped: English speakers still
// need a native language to translate into.
func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		if token == "" {
			continue
		}
		base := strings.ToLower(token)
		if idx := strings.IndexAny(base, "-_"); idx > 0 {
			if region := token[idx+1:]; region != "" {
				if v := langs.ForCountry(region); v != "" {
					return v
				}
			}
			base = base[:idx]
		}
		if lang := languageForBaseTag(base); lang != "" {
			return lang
		}
	}
	return ""
}

var baseTagLanguages = map[string]string{
	"fil": "Filipino/Tagalog",
	"tl":  "Filipino/Tagalog",
	"es":  "Spanish",
	"fr":  "French",
	"de":  "German",
	"it":  "Italian",
	"pt":  "Portuguese",
	"ru":  "Russian",
	"zh":  "Chinese",
	"ja":  "Japanese",
	"ko":  "Korean",
	"ar":  "Arabic",
	"hi":  "Hindi",
	"tr":  "Turkish",
	"vi":  "Vietnamese",
	"th":  "Thai",
	"id":  "Indonesian",
	"ms":  "Malay",
	"uk":  "Ukrainian",
	"pl":  "Polish",
	"nl":  "Dutch",
}

func languageForBaseTag(tag string) string {
	return baseTagLanguages[tag]
}

func NativeLanguageFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(NativeLanguageKey).(string); ok && v != "" {
		return v
	}
	return langs.DefaultNativeLanguage
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
