// Package i18n translates xliffkit's log lines and table headers.
//
// Catalogs live in locales/<lang>/LC_MESSAGES/xliffkit.po and are embedded
// in the binary. Init picks the embedded catalog closest to the requested
// or detected language; without a match, messages stay in English.
package i18n

import (
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed all:locales
var locales embed.FS

const (
	domain      = "xliffkit"
	localesRoot = "locales"
	fallback    = "en"
)

var (
	po      *gotext.Locale
	current = fallback
)

// Init loads the catalog for lang, or for the language detected from
// LANGUAGE, LC_ALL, LC_MESSAGES and LANG when lang is empty. It returns the
// language actually used.
func Init(lang string) string {
	if lang == "" {
		lang = detectLanguage()
	}
	current = match(lang, Available())

	po = gotext.NewLocaleFSWithPath(current, locales, localesRoot)
	po.AddDomain(domain)
	po.SetDomain(domain)
	return current
}

// Language returns the language selected by the last Init.
func Language() string {
	return current
}

// Available returns the languages with an embedded catalog, sorted.
func Available() []string {
	entries, err := fs.ReadDir(locales, localesRoot)
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// match returns the entry of available closest to lang, or fallback.
// Regional variants fall back to their base language ("de_AT" -> "de").
func match(lang string, available []string) string {
	lang, _, _ = strings.Cut(lang, ".")
	want, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return fallback
	}

	tags := []language.Tag{language.English}
	for _, a := range available {
		tags = append(tags, language.Make(strings.ReplaceAll(a, "_", "-")))
	}

	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No || idx == 0 {
		return fallback
	}
	return available[idx-1]
}

// T translates msgid, or returns it unchanged.
func T(msgid string) string {
	if po == nil {
		return msgid
	}
	return po.Get(msgid)
}

// N translates a message with plural forms.
func N(singular, plural string, n int) string {
	if po == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return po.GetN(singular, plural, n)
}

// detectLanguage follows GNU gettext: LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// "ru_RU.UTF-8" -> "ru_RU"
		val, _, _ = strings.Cut(val, ".")
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return fallback
}
