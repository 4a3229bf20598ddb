package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swistaczek/ruby-snippets/core/index"
)

func TestKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pattern     string
		description string
		want        string
	}{
		{
			name:        "stopwords and short tokens dropped",
			pattern:     "Cache Pattern",
			description: "Uses the cache to speed up queries",
			want:        "cache pattern queries speed",
		},
		{
			name:        "deduplicated and sorted",
			pattern:     "Broadcast Broadcast",
			description: "broadcast after_create callback",
			want:        "after_create broadcast callback",
		},
		{
			name:        "underscore tokens kept",
			pattern:     "Scopes",
			description: "deleted_at nil scope",
			want:        "deleted_at nil scope scopes",
		},
		{
			name:        "empty input",
			pattern:     "",
			description: "",
			want:        "",
		},
		{
			name:        "only stopwords",
			pattern:     "The",
			description: "of and with using",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, index.Keywords(tt.pattern, tt.description))
		})
	}
}

func TestKeywordsDeterminism(t *testing.T) {
	t.Parallel()

	first := index.Keywords("Cache Pattern", "Uses the cache to speed up queries")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, index.Keywords("Cache Pattern", "Uses the cache to speed up queries"))
	}

	// Word order in the input does not affect the output.
	reordered := index.Keywords("Pattern Cache", "queries speed the cache uses")
	assert.Equal(t, first, reordered)
}
