package freq

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractText pulls the visible text out of an HTML document so web
// pages can serve as frequency corpora. Script and style contents are
// skipped; text nodes are joined with single spaces.
func ExtractText(r io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(r)

	var b strings.Builder
	skipDepth := 0
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return "", err
			}
			return strings.TrimSpace(b.String()), nil
		case html.StartTagToken:
			t := tokenizer.Token()
			if skippedTag(t.Data) {
				skipDepth++
			}
		case html.EndTagToken:
			t := tokenizer.Token()
			if skippedTag(t.Data) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
}

func skippedTag(name string) bool {
	switch strings.ToLower(name) {
	case "script", "style", "noscript":
		return true
	}
	return false
}

// Words splits extracted corpus text into lowercase words, stripping
// anything that is not a letter. Empty words are dropped.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	})
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, strings.ToLower(field))
	}
	return words
}
