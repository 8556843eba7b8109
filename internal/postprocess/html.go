// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package postprocess

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// markdownRenderer converts the Markdown body. GFM covers the tables and
// strikethrough models tend to emit.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts Markdown to a standalone HTML document with the
// artifact's SEO meta tags injected into the head.
func RenderHTML(markdown string, meta types.ArtifactMeta) (string, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(meta.Title))
	if meta.Description != "" {
		fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(meta.Description))
	}
	if len(meta.Keywords) > 0 {
		fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", html.EscapeString(strings.Join(meta.Keywords, ", ")))
	}
	b.WriteString(pageStyle)
	b.WriteString("</head>\n<body>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// pageStyle is the fixed stylesheet applied to every rendered post.
const pageStyle = `<style>
body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    line-height: 1.8;
    color: #333;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
    background-color: #f9f9f9;
}
h1, h2, h3, h4 {
    color: #2c3e50;
    margin-top: 1.5em;
    margin-bottom: 0.5em;
}
h1 {
    border-bottom: 2px solid #eee;
    padding-bottom: 10px;
}
img {
    max-width: 100%;
    height: auto;
    border-radius: 8px;
    margin: 20px 0;
}
code {
    font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    background-color: #f5f5f5;
    padding: 2px 6px;
    border-radius: 4px;
    font-size: 0.9em;
}
pre {
    background-color: #f5f5f5;
    padding: 16px;
    border-radius: 8px;
    overflow-x: auto;
    margin: 20px 0;
    border-left: 4px solid #3498db;
}
blockquote {
    border-left: 4px solid #3498db;
    padding-left: 16px;
    margin-left: 0;
    color: #555;
}
a {
    color: #3498db;
    text-decoration: none;
}
table {
    border-collapse: collapse;
    width: 100%;
    margin: 20px 0;
}
th, td {
    border: 1px solid #ddd;
    padding: 8px;
    text-align: left;
}
th {
    background-color: #f2f2f2;
}
</style>
`
