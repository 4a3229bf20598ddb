package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/merge"
)

func TestSectionsConcatenatesByName(t *testing.T) {
	t.Parallel()

	a := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "A"}}}}
	b := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "B"}}}}

	merged := merge.Sections(a, b)
	require.Len(t, merged, 1)
	assert.Equal(t, "Models", merged[0].Name)
	require.Len(t, merged[0].Patterns, 2)
	assert.Equal(t, "A", merged[0].Patterns[0].Title)
	assert.Equal(t, "B", merged[0].Patterns[1].Title)
}

func TestSectionsFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	a := []core.Section{
		{Name: "Models", Patterns: []core.Pattern{{Title: "A"}}},
		{Name: "Controllers", Patterns: []core.Pattern{{Title: "B"}}},
	}
	b := []core.Section{
		{Name: "Frontend", Patterns: []core.Pattern{{Title: "C"}}},
		{Name: "Models", Patterns: []core.Pattern{{Title: "D"}}},
	}

	merged := merge.Sections(a, b)
	require.Len(t, merged, 3)
	assert.Equal(t, "Models", merged[0].Name)
	assert.Equal(t, "Controllers", merged[1].Name)
	assert.Equal(t, "Frontend", merged[2].Name)
	assert.Equal(t, []core.Pattern{{Title: "A"}, {Title: "D"}}, merged[0].Patterns)
}

// Identical titles from different sources are kept, not deduplicated.
func TestSectionsKeepsDuplicateTitles(t *testing.T) {
	t.Parallel()

	a := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "Soft Delete", Description: "campfire"}}}}
	b := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "Soft Delete", Description: "fizzy"}}}}

	merged := merge.Sections(a, b)
	require.Len(t, merged, 1)
	require.Len(t, merged[0].Patterns, 2)
	assert.Equal(t, "campfire", merged[0].Patterns[0].Description)
	assert.Equal(t, "fizzy", merged[0].Patterns[1].Description)
}

func TestSectionsDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "A"}}}}
	b := []core.Section{{Name: "Models", Patterns: []core.Pattern{{Title: "B"}}}}

	_ = merge.Sections(a, b)
	require.Len(t, a[0].Patterns, 1)
	require.Len(t, b[0].Patterns, 1)
}

func TestSectionsKeepsFirstID(t *testing.T) {
	t.Parallel()

	a := []core.Section{{ID: "", Name: "Models"}}
	b := []core.Section{{ID: "models", Name: "Models"}}

	merged := merge.Sections(a, b)
	require.Len(t, merged, 1)
	assert.Equal(t, "models", merged[0].ID)
}

func TestSectionsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, merge.Sections())
	assert.Empty(t, merge.Sections(nil, nil))
}
