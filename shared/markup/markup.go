// Package markup turns raw post text into the small HTML subset shown on the
// board: greentext lines, links and reply citations.
package markup

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/util"
)

const (
	quoteMarker    = "&gt;"
	citationMarker = "&gt;&gt;"
	lineBreak      = "<br>"
)

var (
	// Path characters are the printable ASCII range minus quotes and angle
	// brackets, so a link never runs into markup inserted by earlier steps.
	urlRegex      = regexp.MustCompile(`https?://(?:[a-zA-Z0-9$-;=?-_@.&+!*(),]|%[0-9a-fA-F]{2})+`)
	citationRegex = regexp.MustCompile(`&gt;&gt;(\d+)`)
	// Escaped markup that may trail a link without belonging to it
	urlStopEntities = []string{"&lt;", "&gt;", "&quot;"}
)

// Comment renders post text. The steps run in a fixed order: escaping first,
// so nothing later can reintroduce raw markup from the input, and links
// before citations, so citation anchors never land inside a link.
func Comment(text string) string {
	escaped := string(util.EscapeHTML([]byte(text)))
	quoted := greentext(escaped)
	return linkify(quoted)
}

// Subject renders a thread subject: comment rendering wrapped in bold.
func Subject(text string) string {
	return "<b>" + Comment(text) + "</b>"
}

// greentext wraps lines quoted with a single marker. Citations start with a
// double marker and are left alone. Line count and order are preserved.
func greentext(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, quoteMarker) && !strings.HasPrefix(line, citationMarker) {
			line = `<span class="greentext">` + line + `</span>`
		}
		lines[i] = line
	}
	return strings.Join(lines, lineBreak)
}

// linkify turns URLs into links, then citations found outside of those links
// into fragment anchors. Matching resumes where a trimmed link ends, so a URL
// that directly follows another one is linked too.
func linkify(text string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(text) {
		loc := urlRegex.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		url := trimURL(text[start : pos+loc[1]])
		pos = start + len(url)
		if strings.HasSuffix(url, "://") {
			continue
		}

		b.WriteString(cite(text[last:start]))
		b.WriteString(`<a href="`)
		b.WriteString(url)
		b.WriteString(`">`)
		b.WriteString(url)
		b.WriteString(`</a>`)
		last = pos
	}
	b.WriteString(cite(text[last:]))
	return b.String()
}

func cite(text string) string {
	return citationRegex.ReplaceAllString(text, `<a href="#p$1">&gt;&gt;$1</a>`)
}

func trimURL(url string) string {
	for _, entity := range urlStopEntities {
		if i := strings.Index(url, entity); i >= 0 {
			url = url[:i]
		}
	}
	return url
}
