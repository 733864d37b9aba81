package content

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())

	assert.NotEmpty(t, site.Projects)
	assert.NotEmpty(t, site.Skills)
	assert.NotEmpty(t, site.Achievements)
	assert.NotEmpty(t, site.Experience)
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Projects[0].Technologies[0] = "changed"
	a.Experience[0].Achievements = nil

	b := Default()
	assert.Equal(t, "React", b.Projects[0].Technologies[0])
	assert.NotEmpty(t, b.Experience[0].Achievements)
}

func TestProjectLinks(t *testing.T) {
	p := Project{Title: "x"}
	assert.False(t, p.HasDemo())
	assert.False(t, p.HasSource())

	p.DemoURL = "https://example.com"
	p.SourceURL = "https://github.com/x/y"
	assert.True(t, p.HasDemo())
	assert.True(t, p.HasSource())
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, s Site)
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, s Site) {
				assert.Equal(t, Default(), s)
			},
		},
		{
			name: "projects replaced, rest kept",
			yaml: `
projects:
  - title: Only One
    description: just this
    technologies: [Go]
    source_url: https://github.com/me/only-one
`,
			check: func(t *testing.T, s Site) {
				require.Len(t, s.Projects, 1)
				assert.Equal(t, "Only One", s.Projects[0].Title)
				assert.False(t, s.Projects[0].HasDemo())
				assert.Equal(t, Default().Skills, s.Skills)
			},
		},
		{
			name: "partial profile replaces the whole profile",
			yaml: "profile:\n  name: Jane Roe\n",
			check: func(t *testing.T, s Site) {
				assert.Equal(t, Profile{Name: "Jane Roe"}, s.Profile)
				assert.Equal(t, Default().Projects, s.Projects)
			},
		},
		{
			name:    "profile without a name rejected",
			yaml:    "profile:\n  email: jane@example.com\n",
			wantErr: "profile.name is required",
		},
		{
			name:    "empty list rejected",
			yaml:    "achievements: []\n",
			wantErr: "achievements must not be empty",
		},
		{
			name: "relative url rejected",
			yaml: `
projects:
  - title: Bad
    demo_url: /relative
`,
			wantErr: "projects[0].demo_url",
		},
		{
			name:    "unknown field rejected",
			yaml:    "bogus: 1\n",
			wantErr: "field bogus not found",
		},
		{
			name: "unknown accent rejected",
			yaml: `
skills:
  - title: Misc
    accent: tertiary
`,
			wantErr: "unknown accent",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			site, err := Decode(strings.NewReader(tc.yaml))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, site)
		})
	}
}

func TestDumpRoundTripsThroughLoadFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Dump(&buf))

	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	site, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), site)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening content")
}
