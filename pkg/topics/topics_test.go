package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"profiles.md":       {Data: []byte("# Profiles\n\nGenerations of a profile")},
		"deletion.txt":      {Data: []byte("Deletion rules")},
		"option-dry-run.md": {Data: []byte("Dry run")},
		"nested/listing.md": {Data: []byte("Listing format")},
		"config.txxt":       {Data: []byte("Configuration Guide")},
		"ignore.json":       {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{})
		require.NoError(t, err)

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"profiles", true, "# Profiles\n\nGenerations of a profile"},
			{"deletion", true, "Deletion rules"},
			{"listing", true, "Listing format"},
			{"config", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := m.Get(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"config"}, m.List())
	})
}

func TestGetFlagStyle(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "Dry run", topic.Content)
	}
}

func TestList(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"deletion", "listing", "option-dry-run", "profiles"}, m.List())
}

func TestWriteIndex(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	m.WriteIndex(&buf, "gcroots")
	assert.Equal(t, "Available help topics:\n"+
		"\nGeneral topics:\n  deletion\n  listing\n  profiles\n"+
		"\nOption topics:\n  --dry-run\n"+
		"\nUse 'gcroots help <topic>' to read about a specific topic.\n", buf.String())

	empty, err := New(fstest.MapFS{}, Options{})
	require.NoError(t, err)
	buf.Reset()
	empty.WriteIndex(&buf, "gcroots")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}
	return strings.ToUpper(content)
}

func TestShowUsesRenderer(t *testing.T) {
	m, err := New(testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.True(t, m.Show(&buf, "gcroots", "listing"))
	assert.Equal(t, "LISTING FORMAT", buf.String())

	buf.Reset()
	assert.True(t, m.Show(&buf, "gcroots", "deletion"))
	assert.Equal(t, "Deletion rules", buf.String())

	assert.False(t, m.Show(&buf, "gcroots", "nope"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := (&GlamourRenderer{Style: "notty", Width: 40}).Render("# Title\n\nbody", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestInstall(t *testing.T) {
	m, err := New(testFS(), Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "gcroots", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "print", Short: "Print the roots", Run: func(*cobra.Command, []string) {}})
		m.Install(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		return root, &buf
	}

	t.Run("help topic", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "profiles"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Profiles\n\nGenerations of a profile", buf.String())
	})

	t.Run("help topics", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("help command falls back", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "print"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Print the roots")
	})
}
