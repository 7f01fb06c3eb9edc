package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aipolyglot/internal/langs"
)

func TestDetectNativeLanguageHeaderWins(t *testing.T) {
	r := httptest.NewRequest("POST", "/translate", nil)
	r.Header.Set("X-Native-Language", "spanish")
	r.Header.Set("Accept-Language", "ja-JP")

	if got := detectNativeLanguage(r, nil); got != "Spanish" {
		t.Fatalf("detectNativeLanguage() = %q, want Spanish", got)
	}
}

func TestDetectNativeLanguageAcceptLanguage(t *testing.T) {
	r := httptest.NewRequest("POST", "/translate", nil)
	r.Header.Set("Accept-Language", "fil-PH,en;q=0.8")

	if got := detectNativeLanguage(r, nil); got != "Filipino/Tagalog" {
		t.Fatalf("detectNativeLanguage() = %q, want Filipino/Tagalog", got)
	}
}

func TestDetectNativeLanguageSkipsEnglish(t *testing.T) {
	r := httptest.NewRequest("POST", "/translate", nil)
	r.Header.Set("Accept-Language", "en-US,vi;q=0.7")

	if got := detectNativeLanguage(r, nil); got != "Vietnamese" {
		t.Fatalf("detectNativeLanguage() = %q, want Vietnamese", got)
	}
}

func TestDetectNativeLanguageGeoIPFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/translate", nil)
	r.RemoteAddr = "203.0.113.9:443"
	lookup := func(ip string) (string, error) {
		if ip != "203.0.113.9" {
			t.Fatalf("lookup got ip %q", ip)
		}
		return "KR", nil
	}

	if got := detectNativeLanguage(r, lookup); got != "Korean" {
		t.Fatalf("detectNativeLanguage() = %q, want Korean", got)
	}
}

func TestDetectNativeLanguageDefault(t *testing.T) {
	r := httptest.NewRequest("POST", "/translate", nil)

	if got := detectNativeLanguage(r, nil); got != langs.DefaultNativeLanguage {
		t.Fatalf("detectNativeLanguage() = %q, want default", got)
	}
}

func TestNativeLanguageMiddlewareStoresContextValue(t *testing.T) {
	var got string
	handler := NativeLanguage(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = NativeLanguageFromContext(r.Context())
	}))

	r := httptest.NewRequest("POST", "/translate", nil)
	r.Header.Set("X-Native-Language", "Japanese")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got != "Japanese" {
		t.Fatalf("context native language = %q, want Japanese", got)
	}
}
