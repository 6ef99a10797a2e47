package nodetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"properties.title.ui.label", "properties.title"},
		{"ui.inspector.groups.general.label", "groups.general"},
		{"ui.inspector.tabs.meta.label", "tabs.meta"},
		{"ui.inspector.views.stats.label", "views.stats"},
		{"properties.layout.ui.inspector.editorOptions.values.wide.label", "properties.layout.selectBoxEditor.values.wide"},
		{"properties.layout.ui.inspector.editorOptions.placeholder", "properties.layout.selectBoxEditor.placeholder"},

		// No rule: passed through, trimmed.
		{"ui.label", "ui.label"},
		{"properties.title.ui.help.message", "properties.title.ui.help.message"},
		{"  properties.title.ui.inspector.editorOptions.label ", "properties.title.ui.inspector.editorOptions.label"},
		{"ui.help.message", "ui.help.message"},
		{"properties.a.b.ui.label", "properties.a.b.ui.label"},
		{"xui.label", "xui.label"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	id := "properties.title.ui.label"
	for i := 0; i < 3; i++ {
		assert.Equal(t, "properties.title", Normalize(id))
	}
}

func TestRules_FirstMatchWins(t *testing.T) {
	// Every rule must accept at least one id and rules must not shadow
	// each other for their canonical examples.
	examples := map[string]string{
		"property label":         "properties.p.ui.label",
		"inspector group label":  "ui.inspector.groups.g.label",
		"inspector tab label":    "ui.inspector.tabs.t.label",
		"inspector view label":   "ui.inspector.views.v.label",
		"select box value label": "properties.p.ui.inspector.editorOptions.values.v.label",
		"select box placeholder": "properties.p.ui.inspector.editorOptions.placeholder",
	}

	for _, r := range rules {
		id, ok := examples[r.name]
		if !assert.True(t, ok, "no example for rule %q", r.name) {
			continue
		}
		for _, other := range rules {
			if other.pattern.MatchString(id) {
				assert.Equal(t, r.name, other.name, "id %q first matched by %q", id, other.name)
				break
			}
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{" ui.label", "properties.x.ui.label", "  ", "custom.path"})
	assert.Equal(t, []string{"ui.label", "properties.x", "custom.path"}, got)
}
