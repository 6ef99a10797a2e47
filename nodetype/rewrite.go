package nodetype

import (
	"regexp"
	"strings"
)

// rule rewrites ids whose shape matches pattern.
type rule struct {
	name    string
	pattern *regexp.Regexp
	rewrite func(m []string) string
}

// rules is evaluated in order; the first matching rule wins.
var rules = []rule{
	{
		name:    "property label",
		pattern: regexp.MustCompile(`^properties\.([^.]+)\.ui\.label$`),
		rewrite: func(m []string) string { return "properties." + m[1] },
	},
	{
		name:    "inspector group label",
		pattern: regexp.MustCompile(`^ui\.inspector\.groups\.([^.]+)\.label$`),
		rewrite: func(m []string) string { return "groups." + m[1] },
	},
	{
		name:    "inspector tab label",
		pattern: regexp.MustCompile(`^ui\.inspector\.tabs\.([^.]+)\.label$`),
		rewrite: func(m []string) string { return "tabs." + m[1] },
	},
	{
		name:    "inspector view label",
		pattern: regexp.MustCompile(`^ui\.inspector\.views\.([^.]+)\.label$`),
		rewrite: func(m []string) string { return "views." + m[1] },
	},
	{
		name:    "select box value label",
		pattern: regexp.MustCompile(`^properties\.([^.]+)\.ui\.inspector\.editorOptions\.values\.([^.]+)\.label$`),
		rewrite: func(m []string) string { return "properties." + m[1] + ".selectBoxEditor.values." + m[2] },
	},
	{
		name:    "select box placeholder",
		pattern: regexp.MustCompile(`^properties\.([^.]+)\.ui\.inspector\.editorOptions\.placeholder$`),
		rewrite: func(m []string) string { return "properties." + m[1] + ".selectBoxEditor.placeholder" },
	},
}

// Normalize trims id and rewrites it with the first matching rule.
// Ids matching no rule are returned trimmed but otherwise unchanged.
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(id); m != nil {
			return r.rewrite(m)
		}
	}
	return id
}

// NormalizeAll applies Normalize to every id, keeping order and dropping
// ids that end up empty.
func NormalizeAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n := Normalize(id); n != "" {
			out = append(out, n)
		}
	}
	return out
}
