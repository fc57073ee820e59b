package main

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flyrell/runlog/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func TestMdToHTMLPath(t *testing.T) {
	assert.Equal(t, "index.html", mdToHTMLPath("README.md"))
	assert.Equal(t, filepath.Join("commands", "add.html"), mdToHTMLPath(filepath.Join("commands", "add.md")))
}

func TestRelativeRoot(t *testing.T) {
	assert.Equal(t, "", relativeRoot("index.html"))
	assert.Equal(t, "../", relativeRoot(filepath.Join("commands", "add.html")))
}

func TestCommandPages(t *testing.T) {
	pages := commandPages(cli.Root())

	require.NotEmpty(t, pages)
	assert.Equal(t, "README.md", pages[0].MDPath)
	assert.Contains(t, pages[0].Body, "[add](commands/add.md)")

	var add *Page
	for i := range pages {
		if pages[i].Title == "runlog add" {
			add = &pages[i]
		}
	}
	require.NotNil(t, add)
	assert.Contains(t, add.Body, "--distance")
	assert.Contains(t, add.Body, "## Global flags")
	assert.Contains(t, add.Body, "--data-dir")
	assert.Contains(t, add.Body, "## Aliases\n\nlog")
}

func TestWritePage(t *testing.T) {
	dir := t.TempDir()
	pages := commandPages(cli.Root())
	tmpl := template.Must(template.New("page").Parse(pageTemplate))

	require.NoError(t, writePage(goldmark.New(), tmpl, dir, pages[0], pages))

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `href="commands/add.html"`)
	assert.FileExists(t, filepath.Join(dir, "README.md"))
}
