// Package langmeta provides language display metadata (native names and
// emoji flags) and the canonical locale form used in catalog paths.
package langmeta

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry maps locale keys ("de", "de-CH") to display metadata.
// Variants are resolved in Resolve() via Canonical and base fallback.
var Registry = map[string]Meta{
	"ar":    {Name: "العربية", Flag: "🇸🇦"},
	"bg":    {Name: "Български", Flag: "🇧🇬"},
	"ca":    {Name: "Català", Flag: "🇪🇸"},
	"cs":    {Name: "Čeština", Flag: "🇨🇿"},
	"da":    {Name: "Dansk", Flag: "🇩🇰"},
	"de":    {Name: "Deutsch", Flag: "🇩🇪"},
	"de-AT": {Name: "Deutsch (Österreich)", Flag: "🇦🇹"},
	"de-CH": {Name: "Deutsch (Schweiz)", Flag: "🇨🇭"},
	"el":    {Name: "Ελληνικά", Flag: "🇬🇷"},
	"en":    {Name: "English", Flag: "🇺🇸"},
	"en-GB": {Name: "English (UK)", Flag: "🇬🇧"},
	"en-US": {Name: "English (US)", Flag: "🇺🇸"},
	"es":    {Name: "Español", Flag: "🇪🇸"},
	"es-MX": {Name: "Español (México)", Flag: "🇲🇽"},
	"et":    {Name: "Eesti", Flag: "🇪🇪"},
	"fi":    {Name: "Suomi", Flag: "🇫🇮"},
	"fr":    {Name: "Français", Flag: "🇫🇷"},
	"fr-CA": {Name: "Français (Canada)", Flag: "🇨🇦"},
	"fr-CH": {Name: "Français (Suisse)", Flag: "🇨🇭"},
	"he":    {Name: "עברית", Flag: "🇮🇱"},
	"hr":    {Name: "Hrvatski", Flag: "🇭🇷"},
	"hu":    {Name: "Magyar", Flag: "🇭🇺"},
	"id":    {Name: "Bahasa Indonesia", Flag: "🇮🇩"},
	"it":    {Name: "Italiano", Flag: "🇮🇹"},
	"it-CH": {Name: "Italiano (Svizzera)", Flag: "🇨🇭"},
	"ja":    {Name: "日本語", Flag: "🇯🇵"},
	"ko":    {Name: "한국어", Flag: "🇰🇷"},
	"lt":    {Name: "Lietuvių", Flag: "🇱🇹"},
	"lv":    {Name: "Latviešu", Flag: "🇱🇻"},
	"nb":    {Name: "Norsk bokmål", Flag: "🇳🇴"},
	"nl":    {Name: "Nederlands", Flag: "🇳🇱"},
	"nl-BE": {Name: "Nederlands (België)", Flag: "🇧🇪"},
	"pl":    {Name: "Polski", Flag: "🇵🇱"},
	"pt":    {Name: "Português", Flag: "🇵🇹"},
	"pt-BR": {Name: "Português (Brasil)", Flag: "🇧🇷"},
	"ro":    {Name: "Română", Flag: "🇷🇴"},
	"ru":    {Name: "Русский", Flag: "🇷🇺"},
	"sk":    {Name: "Slovenčina", Flag: "🇸🇰"},
	"sl":    {Name: "Slovenščina", Flag: "🇸🇮"},
	"sr":    {Name: "Српски", Flag: "🇷🇸"},
	"sv":    {Name: "Svenska", Flag: "🇸🇪"},
	"th":    {Name: "ไทย", Flag: "🇹🇭"},
	"tr":    {Name: "Türkçe", Flag: "🇹🇷"},
	"uk":    {Name: "Українська", Flag: "🇺🇦"},
	"vi":    {Name: "Tiếng Việt", Flag: "🇻🇳"},
	"zh":    {Name: "中文", Flag: "🇨🇳"},
	"zh-CN": {Name: "简体中文", Flag: "🇨🇳"},
	"zh-TW": {Name: "繁體中文", Flag: "🇹🇼"},
}

// Canonical validates locale as a BCP 47 tag and returns it in the form
// used for catalog directories: lower-case language, title-case script and
// upper-case region joined by '_', e.g. "de", "de_CH", "zh_Hant_TW".
// Both '-' and '_' are accepted as separators.
func Canonical(locale string) (string, error) {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return "", fmt.Errorf("empty locale")
	}

	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	base, _ := tag.Base()
	parts := []string{base.String()}
	if script, conf := tag.Script(); conf == language.Exact {
		parts = append(parts, script.String())
	}
	if region, conf := tag.Region(); conf == language.Exact {
		parts = append(parts, region.String())
	}
	return strings.Join(parts, "_"), nil
}

// displayKey maps a locale to the form used as Registry key ("pt-BR").
func displayKey(lang string) string {
	if c, err := Canonical(lang); err == nil {
		return strings.ReplaceAll(c, "_", "-")
	}
	return strings.TrimSpace(lang)
}

// Resolve returns best-effort language metadata for language codes,
// supporting variants like pt_BR, pt-BR, and locale fallbacks.
func Resolve(lang string) Meta {
	if m, ok := Registry[lang]; ok {
		return m
	}
	key := displayKey(lang)
	if m, ok := Registry[key]; ok {
		return m
	}
	if base, _, ok := strings.Cut(key, "-"); ok {
		if m, ok := Registry[base]; ok {
			return m
		}
	}
	return Meta{Name: lang, Flag: ""}
}

// Label returns "<flag> <native name>" for lang, or lang itself when no
// metadata is known.
func Label(lang string) string {
	m := Resolve(lang)
	if m.Flag == "" {
		return m.Name
	}
	return m.Flag + " " + m.Name
}
