package textproc

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`</?([A-Za-z][A-Za-z0-9]*)(?:\s[^<>]*)?/?>`)

	angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// RemoveLinks keeps the text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// protectAngles drops real HTML tags and escapes every other angle bracket,
// so reviews like "it is <awesome>" keep their words through rendering.
func protectAngles(input string) string {
	input = tagPattern.ReplaceAllStringFunc(input, func(tag string) string {
		name := tagPattern.FindStringSubmatch(tag)[1]
		if atom.Lookup([]byte(strings.ToLower(name))) != 0 {
			return " "
		}
		return tag
	})
	return angleEscaper.Replace(input)
}

// StripMarkup flattens markdown and inline HTML into plain, single-spaced text.
// Angle-bracketed words that are not HTML elements are kept as text.
func StripMarkup(input string) string {
	input = RemoveLinks(input)
	if strings.TrimSpace(input) == "" {
		return ""
	}

	rendered := blackfriday.Run([]byte(protectAngles(input)), blackfriday.WithNoExtensions())

	var parts []string
	z := html.NewTokenizer(bytes.NewReader(rendered))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
