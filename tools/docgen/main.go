package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flyrell/runlog/internal/cli"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Page is one generated document: Markdown source and where it goes.
type Page struct {
	Title  string
	MDPath string // relative to the output directory
	Body   string
}

// PageData is the template data for rendering a docs page.
type PageData struct {
	Title    string
	Sidebar  template.HTML
	Content  template.HTML
	RootPath string
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} · runlog</title>
<link rel="stylesheet" href="{{.RootPath}}_docs.css">
</head>
<body>
<nav>{{.Sidebar}}</nav>
<main>{{.Content}}</main>
</body>
</html>
`

func main() {
	outDir := flag.String("out", "docs", "output directory")
	flag.Parse()

	pages := commandPages(cli.Root())

	tmpl := template.Must(template.New("page").Parse(pageTemplate))

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	for _, page := range pages {
		if err := writePage(md, tmpl, *outDir, page, pages); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("  generated %s\n", mdToHTMLPath(page.MDPath))
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

func writePage(md goldmark.Markdown, tmpl *template.Template, outDir string, page Page, all []Page) error {
	mdFile := filepath.Join(outDir, page.MDPath)
	if err := os.MkdirAll(filepath.Dir(mdFile), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", mdFile, err)
	}
	if err := os.WriteFile(mdFile, []byte(page.Body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mdFile, err)
	}

	var contentBuf bytes.Buffer
	if err := md.Convert([]byte(page.Body), &contentBuf); err != nil {
		return fmt.Errorf("converting %s: %w", page.MDPath, err)
	}

	outPath := mdToHTMLPath(page.MDPath)
	rootPath := relativeRoot(outPath)

	data := PageData{
		Title:    page.Title,
		Sidebar:  template.HTML(renderSidebar(all, page.MDPath, rootPath)),
		Content:  template.HTML(rewriteLinks(contentBuf.String())),
		RootPath: rootPath,
	}

	var pageBuf bytes.Buffer
	if err := tmpl.Execute(&pageBuf, data); err != nil {
		return fmt.Errorf("executing template for %s: %w", page.MDPath, err)
	}
	return os.WriteFile(filepath.Join(outDir, outPath), pageBuf.Bytes(), 0o644)
}

// commandPages returns the index page followed by one page per visible
// subcommand of root.
func commandPages(root *cobra.Command) []Page {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", root.Name(), root.Short)
	b.WriteString("| Command | Description |\n|---|---|\n")

	var pages []Page
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		mdPath := filepath.Join("commands", c.Name()+".md")
		fmt.Fprintf(&b, "| [%s](%s) | %s |\n", c.Name(), filepath.ToSlash(mdPath), c.Short)
		pages = append(pages, Page{Title: c.CommandPath(), MDPath: mdPath, Body: commandMarkdown(c)})
	}

	index := Page{Title: root.Name(), MDPath: "README.md", Body: b.String()}
	return append([]Page{index}, pages...)
}

// commandMarkdown renders the reference page of a single command.
func commandMarkdown(c *cobra.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", c.CommandPath(), c.Short)
	fmt.Fprintf(&b, "## Usage\n\n```\n%s\n```\n", c.UseLine())

	if len(c.Aliases) > 0 {
		fmt.Fprintf(&b, "\n## Aliases\n\n%s\n", strings.Join(c.Aliases, ", "))
	}
	if usages := c.NonInheritedFlags().FlagUsages(); usages != "" {
		fmt.Fprintf(&b, "\n## Flags\n\n```\n%s```\n", usages)
	}
	if usages := c.InheritedFlags().FlagUsages(); usages != "" {
		fmt.Fprintf(&b, "\n## Global flags\n\n```\n%s```\n", usages)
	}
	return b.String()
}

func renderSidebar(pages []Page, current, rootPath string) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, p := range pages {
		class := ""
		if p.MDPath == current {
			class = ` class="active"`
		}
		fmt.Fprintf(&b, "<li><a href=\"%s%s\"%s>%s</a></li>\n",
			rootPath, mdToLinkPath(p.MDPath), class, template.HTMLEscapeString(p.Title))
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// mdToHTMLPath converts a .md path to the corresponding .html output path.
// Special case: README.md → index.html
func mdToHTMLPath(mdPath string) string {
	dir := filepath.Dir(mdPath)
	base := filepath.Base(mdPath)

	var htmlName string
	if strings.EqualFold(base, "README.md") {
		htmlName = "index.html"
	} else {
		htmlName = strings.TrimSuffix(base, ".md") + ".html"
	}

	if dir == "." {
		return htmlName
	}
	return filepath.Join(dir, htmlName)
}

// mdToLinkPath converts a .md path to the href used in the sidebar.
func mdToLinkPath(mdPath string) string {
	htmlPath := filepath.ToSlash(mdToHTMLPath(mdPath))
	if htmlPath == "index.html" {
		return "./"
	}
	return htmlPath
}

// relativeRoot returns the prefix leading from outPath back to the docs root.
func relativeRoot(outPath string) string {
	dir := filepath.Dir(outPath)
	if dir == "." {
		return ""
	}
	depth := strings.Count(filepath.ToSlash(dir), "/") + 1
	return strings.Repeat("../", depth)
}

// rewriteLinks points rendered .md links at the generated .html pages.
func rewriteLinks(htmlContent string) string {
	return strings.ReplaceAll(htmlContent, `.md"`, `.html"`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
