package parse_test

import (
	"html"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/frontmatter"
	"github.com/swistaczek/ruby-snippets/core/parse"
	"github.com/swistaczek/ruby-snippets/core/render"
)

const patternsMarkdown = `# Basecamp Rails Patterns

Comprehensive guide extracted from the Campfire codebase.

## Table of Contents

- [Models](#models) (2 patterns)
- [Frontend/Hotwire](#frontend) (1 patterns)

**Total: 3 patterns**

## Models

### Soft Delete

Marks records as deleted

**Rails Docs:** [Active Record Scopes](https://guides.rubyonrails.org/active_record_querying.html)

**Source:** [app/models/user.rb](https://github.com/basecamp/once-campfire/blob/main/app/models/user.rb)

` + "```ruby" + `
scope :active, -> { where(deleted_at: nil) }
` + "```" + `

### Touch Chains

**Important:** updates timestamps up the association chain

## Frontend/Hotwire

### Turbo Frames

Lazy loading with frames
This second unlabeled line is ignored.
`

func TestParse(t *testing.T) {
	t.Parallel()

	sections := parse.New().Parse(patternsMarkdown)
	require.Len(t, sections, 2)

	models := sections[0]
	assert.Equal(t, "Models", models.Name)
	require.Len(t, models.Patterns, 2)

	soft := models.Patterns[0]
	assert.Equal(t, "Soft Delete", soft.Title)
	assert.Equal(t, "Marks records as deleted", soft.Description)
	assert.Equal(t, "Active Record Scopes", soft.DocsLabel)
	assert.Equal(t, "https://guides.rubyonrails.org/active_record_querying.html", soft.DocsURL)
	assert.Equal(t, "app/models/user.rb", soft.SourceFile)
	assert.Equal(t, "https://github.com/basecamp/once-campfire/blob/main/app/models/user.rb", soft.SourceURL)
	assert.Equal(t, core.CategoryModels, soft.Category)
	// Code is HTML-escaped at capture time.
	assert.Equal(t, "scope :active, -&gt; { where(deleted_at: nil) }", soft.Code)

	// Only the two known label prefixes are reserved; a bold-leading line
	// is an ordinary description.
	touch := models.Patterns[1]
	assert.Equal(t, "Touch Chains", touch.Title)
	assert.Equal(t, "**Important:** updates timestamps up the association chain", touch.Description)
	assert.Empty(t, touch.DocsURL)

	frontend := sections[1]
	assert.Equal(t, "Frontend/Hotwire", frontend.Name)
	require.Len(t, frontend.Patterns, 1)

	turbo := frontend.Patterns[0]
	assert.Equal(t, core.CategoryFrontend, turbo.Category)
	// Only the first unlabeled line becomes the description.
	assert.Equal(t, "Lazy loading with frames", turbo.Description)
}

func TestParseIgnoresLeadingProse(t *testing.T) {
	t.Parallel()

	sections := parse.New().Parse("Some intro.\n\nMore prose without headers.\n")
	assert.Empty(t, sections)
}

func TestParseHeaderBeforeSectionIgnored(t *testing.T) {
	t.Parallel()

	// An H3 with no open section opens nothing.
	sections := parse.New().Parse("### Stray Pattern\n\n## Models\n\n### Real\n")
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Patterns, 1)
	assert.Equal(t, "Real", sections[0].Patterns[0].Title)
}

func TestParseSkipsTableOfContentsHeader(t *testing.T) {
	t.Parallel()

	sections := parse.New().Parse("## Table of Contents\n\n- [Models](#models) (1 patterns)\n\n## Models\n\n### A\n")
	require.Len(t, sections, 1)
	assert.Equal(t, "Models", sections[0].Name)
}

// Rendering a guide and parsing it back must reproduce every structural
// field; code comes back HTML-escaped.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	guide := core.Guide{
		Meta: core.FrontMatter{
			Title:       "Basecamp Rails Patterns - Campfire",
			Description: "Real-world Rails patterns",
			Topics:      "rails, ruby, hotwire",
			Source:      "https://github.com/basecamp/once-campfire",
		},
		Intro: "Patterns extracted from a production Rails 7 application.",
		Sections: []core.Section{
			{
				ID:   "models",
				Name: "Models",
				Patterns: []core.Pattern{
					{
						Title:       "Soft Delete",
						Description: "Marks records as deleted",
						DocsURL:     "https://guides.rubyonrails.org/active_record_querying.html",
						DocsLabel:   "Active Record Scopes",
						SourceURL:   "https://github.com/basecamp/once-campfire/blob/main/app/models/user.rb",
						SourceFile:  "app/models/user.rb",
						Code:        "scope :active, -> { where(deleted_at: nil) }",
					},
					{
						Title:       "Counter Caches",
						Description: "**Important:** keeps aggregate counts without extra queries",
					},
					{Title: "Bare Pattern"},
				},
			},
			{
				ID:   "infra",
				Name: "Deployment Infrastructure",
				Patterns: []core.Pattern{
					{
						Title: "Procfile",
						Code:  "web: bin/rails server\nworker: bin/jobs",
					},
				},
			},
		},
	}

	data, err := render.NewMarkdownRenderer().Render(guide)
	require.NoError(t, err)

	meta, body, err := frontmatter.Split(string(data))
	require.NoError(t, err)
	assert.Equal(t, guide.Meta, meta)

	sections := parse.New().Parse(body)
	require.Len(t, sections, len(guide.Sections))

	for i, got := range sections {
		want := guide.Sections[i]
		assert.Equal(t, want.Name, got.Name)
		require.Len(t, got.Patterns, len(want.Patterns))

		for j, gp := range got.Patterns {
			wp := want.Patterns[j]
			assert.Equal(t, wp.Title, gp.Title)
			assert.Equal(t, wp.Description, gp.Description)
			assert.Equal(t, wp.DocsURL, gp.DocsURL)
			assert.Equal(t, wp.DocsLabel, gp.DocsLabel)
			assert.Equal(t, wp.SourceURL, gp.SourceURL)
			assert.Equal(t, wp.SourceFile, gp.SourceFile)
			assert.Equal(t, html.EscapeString(wp.Code), gp.Code)
			assert.Equal(t, core.Categorize(want.Name), gp.Category)
		}
	}
}

// Parser values keep no state between calls.
func TestParseReuse(t *testing.T) {
	t.Parallel()

	p := parse.New()
	first := p.Parse("## Models\n\n### A\n")
	second := p.Parse("## Controllers\n\n### B\n")

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "Models", first[0].Name)
	assert.Equal(t, "Controllers", second[0].Name)
}
