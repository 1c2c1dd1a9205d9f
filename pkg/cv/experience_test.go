package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivandosoares/portfolio/pkg/portfolio"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{name: "single sentence without period", description: "Built a compiler", want: []string{"Built a compiler."}},
		{name: "single sentence with period", description: "Built a compiler.", want: []string{"Built a compiler."}},
		{name: "two sentences", description: "Built it. Shipped it.", want: []string{"Built it.", "Shipped it."}},
		{name: "abbreviation without space", description: "Uses Node.js and Next.js", want: []string{"Uses Node.js and Next.js."}},
		{name: "empty", description: "", want: nil},
		{name: "stray separators", description: "One. . Two", want: []string{"One.", "Two."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bullets(tt.description))
		})
	}
}

func TestBulletsNeverEndWithDoublePeriod(t *testing.T) {
	data, err := portfolio.Default()
	require.NoError(t, err)

	for _, p := range data.Projects {
		for _, b := range Bullets(p.Description) {
			assert.True(t, strings.HasSuffix(b, "."), b)
			assert.False(t, strings.HasSuffix(b, ".."), b)
		}
	}
}

func TestExperience(t *testing.T) {
	data, err := portfolio.Default()
	require.NoError(t, err)

	entries := Experience(data.Projects)
	require.Len(t, entries, MaxExperienceEntries)
	for i, e := range entries {
		assert.Equal(t, data.Projects[i].Role, e.Role)
		assert.Equal(t, data.Projects[i].Title, e.Title)
		assert.Equal(t, ExperiencePeriod, e.Period)
		assert.NotEmpty(t, e.Bullets)
	}
	// "#" marks a project without a live demo
	assert.Empty(t, entries[2].LiveURL)
	assert.NotEmpty(t, entries[0].LiveURL)

	assert.Empty(t, Experience(nil))
	assert.Len(t, Experience(data.Projects[:2]), 2)
}
