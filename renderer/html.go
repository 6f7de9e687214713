package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// gfm converts GitHub flavored markdown, tables included.
var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown document into an HTML page.
func HTML(title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := gfm.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	page.Write(body.Bytes())
	fmt.Fprint(&page, "</body>\n</html>\n")
	return page.String(), nil
}
