package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewBrowse, "browse"},
		{ViewFetch, "fetch"},
		{ViewArtwork, "artwork"},
		{ViewSettings, "settings"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range []ViewType{ViewMenu, ViewBrowse, ViewFetch, ViewArtwork, ViewSettings, ViewHelp} {
		name := v.String()
		assert.False(t, seen[name], "duplicate view name %s", name)
		seen[name] = true
	}
}
