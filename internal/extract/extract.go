// Package extract turns fetched HTML into bounded plain text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Mode selects the extraction strategy.
type Mode string

// Supported modes.
const (
	// ModeStrip removes structural noise and keeps every remaining text node.
	ModeStrip Mode = "strip"
	// ModeReadability keeps only the main article region, falling back to
	// ModeStrip when no article is found.
	ModeReadability Mode = "readability"
)

// Defaults.
const (
	DefaultMaxChars  = 5000
	TruncationMarker = "..."
	noiseSelector    = "script, style, nav, footer"
)

// ParseMode validates a configured mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeStrip:
		return ModeStrip, nil
	case ModeReadability:
		return ModeReadability, nil
	default:
		return "", fmt.Errorf("unknown extract mode %q", raw)
	}
}

// Extractor converts HTML bodies to text.
type Extractor struct {
	mode     Mode
	maxChars int
}

// New builds an Extractor.
func New(mode Mode, maxChars int) *Extractor {
	if mode == "" {
		mode = ModeStrip
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Extractor{mode: mode, maxChars: maxChars}
}

// Extract returns the flattened, length-bounded text of body.
func (e *Extractor) Extract(body []byte, pageURL string) (string, error) {
	if e.mode == ModeReadability {
		if text := readableText(body, pageURL); text != "" {
			return Truncate(text, e.maxChars), nil
		}
	}
	text, err := StripText(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return Truncate(text, e.maxChars), nil
}

// StripText drops script, style, nav and footer elements and joins the
// remaining text with single spaces. Scripting is disabled while parsing so
// noscript children are elements rather than one raw text node.
func StripText(r io.Reader) (string, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find(noiseSelector).Remove()

	var words []string
	for _, node := range doc.Nodes {
		words = collectWords(node, words)
	}
	return strings.Join(words, " "), nil
}

func collectWords(n *html.Node, words []string) []string {
	if n.Type == html.TextNode {
		return append(words, strings.Fields(n.Data)...)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		words = collectWords(child, words)
	}
	return words
}

func readableText(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil || article.Content == "" {
		return ""
	}
	text, err := StripText(strings.NewReader(article.Content))
	if err != nil {
		return ""
	}
	return text
}

// Truncate caps text at maxChars runes and appends TruncationMarker when cut.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars]) + TruncationMarker
}
