package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swistaczek/ruby-snippets/core"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section string
		want    core.Category
	}{
		{"models", "User Models", core.CategoryModels},
		{"controllers", "Controllers Overview", core.CategoryControllers},
		{"frontend", "Frontend/Hotwire Tips", core.CategoryFrontend},
		{"hotwire alone", "Hotwire Patterns", core.CategoryFrontend},
		{"infrastructure", "Deployment Infrastructure", core.CategoryInfrastructure},
		{"fallback", "Misc Notes", core.CategoryOther},
		{"case insensitive", "MODELS", core.CategoryModels},
		// Priority order is fixed: model wins over any later keyword.
		{"multiple keywords", "Models and Controllers", core.CategoryModels},
		{"controller before frontend", "Frontend Controllers", core.CategoryControllers},
		{"empty name", "", core.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, core.Categorize(tt.section))
		})
	}
}

func TestTotalPatterns(t *testing.T) {
	t.Parallel()

	sections := []core.Section{
		{Name: "Models", Patterns: []core.Pattern{{Title: "A"}, {Title: "B"}}},
		{Name: "Empty"},
		{Name: "Controllers", Patterns: []core.Pattern{{Title: "C"}}},
	}

	assert.Equal(t, 3, core.TotalPatterns(sections))
	assert.Equal(t, 0, core.TotalPatterns(nil))
}
